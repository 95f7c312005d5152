package models

import "time"

type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"index;not null;uniqueIndex:idx_review_user_product" json:"userId"`
	ProductID uint      `gorm:"index;not null;uniqueIndex:idx_review_user_product" json:"productId"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
