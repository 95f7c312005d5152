package userControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/middleware"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type addressInput struct {
	HouseNo  string `json:"houseNo" binding:"required"`
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	District string `json:"district"`
	Pincode  string `json:"pincode" binding:"required"`
}

// POST /add-address
// A new address becomes the default one.
func CreateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input addressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		var address models.Address
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).Where("user_id = ?", userID).
				Update("is_default", false).Error; err != nil {
				return err
			}
			address = models.Address{
				UserID:    userID,
				HouseNo:   input.HouseNo,
				Street:    input.Street,
				City:      input.City,
				District:  input.District,
				Pincode:   input.Pincode,
				IsDefault: true,
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Address created successfully", "newAddress": address})
	}
}

// GET /get-address
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Addresses fetched successfully", "addresses": addresses})
	}
}

// PATCH /set-default-address/:addressId
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("addressId"), userID).
			First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Address not found."})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.Address{}).Where("user_id = ? AND is_default = ?", userID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
			return tx.Model(&address).Update("is_default", true).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to set default address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Default address updated"})
	}
}

// DELETE /delete-address/:addressId
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("addressId"), userID).
			Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Address not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address deleted successfully"})
	}
}
