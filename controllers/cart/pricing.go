package cartControllers

import (
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type Totals struct {
	Subtotal   float64
	GSTAmount  float64
	GrandTotal float64
}

// ComputeTotals combines the line-item subtotals with the global pricing
// modifiers. A zero-value Settings degrades to subtotal-only pricing.
func ComputeTotals(items []models.CartItem, settings models.Settings) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += float64(item.Quantity) * item.Price
	}

	gstAmount := subtotal * settings.GST / 100
	return Totals{
		Subtotal:   subtotal,
		GSTAmount:  gstAmount,
		GrandTotal: subtotal + gstAmount + settings.DeliveryFee + settings.PlatformFee,
	}
}

// LoadSettings reads the singleton settings row. A missing row is not an
// error; all modifiers default to zero.
func LoadSettings(db *gorm.DB) models.Settings {
	var settings models.Settings
	if err := db.First(&settings, models.SettingsID).Error; err != nil {
		return models.Settings{}
	}
	return settings
}
