package cartControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastrakart/ecommerce-api/models"
)

func TestComputeTotalsZeroSettings(t *testing.T) {
	items := []models.CartItem{
		{Quantity: 2, Price: 50},
		{Quantity: 1, Price: 25},
	}

	totals := ComputeTotals(items, models.Settings{})
	assert.Equal(t, 125.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.GSTAmount)
	assert.Equal(t, 125.0, totals.GrandTotal)
}

func TestComputeTotalsAppliesModifiers(t *testing.T) {
	items := []models.CartItem{{Quantity: 2, Price: 50}}
	settings := models.Settings{PlatformFee: 10, GST: 5, DeliveryFee: 20}

	totals := ComputeTotals(items, settings)
	assert.Equal(t, 100.0, totals.Subtotal)
	assert.Equal(t, 5.0, totals.GSTAmount)
	assert.Equal(t, 135.0, totals.GrandTotal)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	settings := models.Settings{PlatformFee: 10, GST: 5, DeliveryFee: 20}

	// Fixed fees still apply to an empty item list; callers short-circuit
	// the empty cart before pricing.
	totals := ComputeTotals(nil, settings)
	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 30.0, totals.GrandTotal)
}

func TestLoadSettingsMissingRow(t *testing.T) {
	db := setupTestDB(t)

	settings := LoadSettings(db)
	assert.Equal(t, models.Settings{}, settings)
}

func TestLoadSettingsExistingRow(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.Settings{
		ID: models.SettingsID, PlatformFee: 7, GST: 18, DeliveryFee: 40,
	}).Error)

	settings := LoadSettings(db)
	assert.Equal(t, 7.0, settings.PlatformFee)
	assert.Equal(t, 18.0, settings.GST)
	assert.Equal(t, 40.0, settings.DeliveryFee)
}
