package models

import "time"

type PaymentResult string
type OrderStatus string
type OrderItemStatus string

const (
	// Gateway-reported payment outcomes
	PaymentResultSuccess PaymentResult = "SUCCESS"
	PaymentResultFail    PaymentResult = "FAIL"
	PaymentResultPending PaymentResult = "PENDING"

	// Overall order status, derived from the payment outcome at creation
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPending   OrderStatus = "PENDING"

	// Per-item fulfillment statuses
	OrderItemPending   OrderItemStatus = "PENDING"
	OrderItemShipped   OrderItemStatus = "SHIPPED"
	OrderItemDelivered OrderItemStatus = "DELIVERED"
	OrderItemCancelled OrderItemStatus = "CANCELLED"
)

type Order struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderRef       string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID         uint          `gorm:"index;not null" json:"userId"`
	User           *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	AddressID      uint          `json:"addressId"`
	TotalAmount    float64       `json:"totalAmount"`
	GST            float64       `gorm:"column:gst" json:"gst"`
	Discount       float64       `json:"discount"`
	CouponCode     string        `json:"couponCode"`
	PaymentMode    string        `json:"paymentMode"`
	PaymentOrderID string        `json:"paymentOrderId"`
	OrderStatus    PaymentResult `gorm:"type:VARCHAR(10)" json:"orderStatus"`
	Status         OrderStatus   `gorm:"type:VARCHAR(10);default:'PENDING'" json:"status"`
	Notes          string        `json:"notes"`
	Items          []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"orderItems,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// OrderItem is an immutable snapshot of a cart line at checkout time.
// Attributes holds a flattened JSON copy of the selected key/value pairs so
// the order stays readable after catalog edits. Only Status changes later.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint            `gorm:"index;not null" json:"orderId"`
	ProductID  uint            `gorm:"index" json:"productId"`
	VariantID  uint            `gorm:"index" json:"variantId"`
	VendorID   uint            `gorm:"index" json:"vendorId"`
	Quantity   int             `json:"quantity"`
	Price      float64         `json:"price"`
	Attributes string          `json:"attributes"`
	Status     OrderItemStatus `gorm:"type:VARCHAR(12);default:'PENDING'" json:"orderItemStatus"`
}
