package models

import "time"

type MainCategory struct {
	ID            uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string        `gorm:"unique;not null" json:"name"`
	Slug          string        `gorm:"unique;not null" json:"slug"`
	Image         string        `json:"image"`
	SubCategories []SubCategory `gorm:"foreignKey:MainCategoryID;constraint:OnDelete:CASCADE" json:"subCategories,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type SubCategory struct {
	ID             uint          `gorm:"primaryKey;autoIncrement" json:"id"`
	MainCategoryID uint          `gorm:"index;not null" json:"mainCategoryId"`
	MainCategory   *MainCategory `gorm:"foreignKey:MainCategoryID" json:"mainCategory,omitempty"`
	Name           string        `gorm:"not null" json:"name"`
	Slug           string        `gorm:"unique;not null" json:"slug"`
	Image          string        `json:"image"`
	CreatedAt      time.Time     `json:"created_at"`
}
