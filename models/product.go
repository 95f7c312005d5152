package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID             uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string           `gorm:"not null" json:"name"`
	Slug           string           `gorm:"unique;not null" json:"slug"`
	Description    string           `json:"description"`
	MainCategoryID uint             `gorm:"index" json:"mainCategoryId"`
	SubCategoryID  uint             `gorm:"index" json:"subCategoryId"`
	VendorID       uint             `gorm:"index" json:"vendorId"`
	Variants       []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}

type ProductVariant struct {
	ID         uint               `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint               `gorm:"index;not null" json:"productId"`
	Product    *Product           `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	SKU        string             `gorm:"column:sku;not null" json:"sku"`
	Price      float64            `gorm:"not null" json:"price"`
	Stock      int                `json:"stock"`
	Height     string             `json:"height,omitempty"`
	Weight     string             `json:"weight,omitempty"`
	Images     []VariantImage     `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Attributes []VariantAttribute `gorm:"foreignKey:VariantID;constraint:OnDelete:CASCADE" json:"attributes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

type VariantImage struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantID uint   `gorm:"index;not null" json:"variantId"`
	URL       string `gorm:"not null" json:"url"`
}

// VariantAttribute is one named option of a variant, e.g. key="color"
// value="red". Keys are not unique per variant.
type VariantAttribute struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	VariantID uint   `gorm:"index;not null" json:"variantId"`
	Key       string `gorm:"not null" json:"key"`
	Value     string `gorm:"not null" json:"value"`
}
