package models

import "time"

type Vendor struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	ShopName  string    `json:"shop_name"`
	CreatedAt time.Time `json:"created_at"`
}
