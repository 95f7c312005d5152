package models

import "time"

// StaticPage holds the admin-managed singleton pages. One row per slug,
// created or replaced by the admin upsert endpoints.
type StaticPage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug      string    `gorm:"unique;not null" json:"slug"`
	Title     string    `json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	PagePrivacyPolicy = "privacy-policy"
	PageTerms         = "terms-and-conditions"
	PageAboutUs       = "about-us"
)
