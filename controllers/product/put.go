package productControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type updateProductInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	MainCategoryID uint   `json:"mainCategoryId"`
	SubCategoryID  uint   `json:"subCategoryId"`
}

// PUT /admin/products/:id
// Base fields only; variants are managed through their own endpoints.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		var input updateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != "" && input.Name != product.Name {
			slug, err := uniqueSlug(db, &models.Product{}, slugify(input.Name))
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
				return
			}
			updates["name"] = input.Name
			updates["slug"] = slug
		}
		if input.Description != "" {
			updates["description"] = input.Description
		}
		if input.MainCategoryID != 0 {
			updates["main_category_id"] = input.MainCategoryID
		}
		if input.SubCategoryID != 0 {
			updates["sub_category_id"] = input.SubCategoryID
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field is required to update."})
			return
		}

		if err := db.Model(&product).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated", "product": product})
	}
}

type updateVariantInput struct {
	SKU   string   `json:"sku"`
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
}

// PUT /admin/variants/:id
func UpdateVariant(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var variant models.ProductVariant
		if err := db.First(&variant, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Variant not found."})
			return
		}

		var input updateVariantInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.SKU != "" {
			updates["sku"] = input.SKU
		}
		if input.Price != nil {
			updates["price"] = *input.Price
		}
		if input.Stock != nil {
			updates["stock"] = *input.Stock
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field is required to update."})
			return
		}

		if err := db.Model(&variant).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update variant"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Variant updated", "variant": variant})
	}
}
