package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingsInput struct {
	PlatformFee *float64 `json:"plateformfee"`
	GST         *float64 `json:"gst"`
	DeliveryFee *float64 `json:"deliveryFee"`
}

// POST /admin/settings
// Creates or updates the fixed-id singleton row. Only the provided
// fields change.
func SetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input settingsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.PlatformFee != nil {
			updates["plateformfee"] = *input.PlatformFee
		}
		if input.GST != nil {
			updates["gst"] = *input.GST
		}
		if input.DeliveryFee != nil {
			updates["delivery_fee"] = *input.DeliveryFee
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field is required to update."})
			return
		}

		settings := models.Settings{ID: models.SettingsID}
		if input.PlatformFee != nil {
			settings.PlatformFee = *input.PlatformFee
		}
		if input.GST != nil {
			settings.GST = *input.GST
		}
		if input.DeliveryFee != nil {
			settings.DeliveryFee = *input.DeliveryFee
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(updates),
		}).Create(&settings).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		db.First(&settings, models.SettingsID)
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings updated successfully", "data": settings})
	}
}

// GET /admin/settings
func GetSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.Settings
		if err := db.First(&settings, models.SettingsID).Error; err != nil {
			// No row yet: all modifiers read as zero.
			settings = models.Settings{ID: models.SettingsID}
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings fetched successfully", "data": settings})
	}
}
