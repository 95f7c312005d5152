package models

import "time"

type Cart struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint       `gorm:"uniqueIndex;not null" json:"userId"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem carries the variant price as it was when the item was added.
// It is never re-read from the catalog afterwards.
type CartItem struct {
	ID         uint                `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID     uint                `gorm:"index;not null" json:"cartId"`
	VariantID  uint                `gorm:"index;not null" json:"variantId"`
	Variant    *ProductVariant     `gorm:"foreignKey:VariantID" json:"variant,omitempty"`
	Quantity   int                 `gorm:"not null" json:"quantity"`
	Price      float64             `gorm:"not null" json:"price"`
	Attributes []CartItemAttribute `gorm:"foreignKey:CartItemID;constraint:OnDelete:CASCADE" json:"cartItemAttributes,omitempty"`
	AddedAt    time.Time           `gorm:"autoCreateTime" json:"added_at"`
}

// CartItemAttribute links a line item to the exact VariantAttribute rows
// the buyer selected, not to raw key/value copies.
type CartItemAttribute struct {
	ID                 uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CartItemID         uint              `gorm:"index;not null" json:"cartItemId"`
	VariantAttributeID uint              `gorm:"not null" json:"variantAttributeId"`
	VariantAttribute   *VariantAttribute `gorm:"foreignKey:VariantAttributeID" json:"variantAttribute,omitempty"`
}
