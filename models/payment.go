package models

import "time"

// Payment is an append-only audit record of gateway verification attempts.
// Failed verifications are stored too, not discarded.
type Payment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   string    `gorm:"column:order_id;index" json:"order_id"`
	PaymentID string    `gorm:"column:payment_id" json:"payment_id"`
	Signature string    `json:"signature"`
	Amount    int64     `json:"amount"` // major units (rupees)
	Currency  string    `json:"currency"`
	UserID    uint      `gorm:"index" json:"userId"`
	ProductID uint      `json:"product_id"`
	Status    string    `gorm:"type:VARCHAR(10)" json:"status"` // "success" | "failed"
	CreatedAt time.Time `json:"created_at"`
}
