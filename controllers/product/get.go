package productControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

func withCatalog(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Variants.Images").
		Preload("Variants.Attributes")
}

// GET /get-all-products
func GetAllProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := withCatalog(db).Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /get-products/:id
// The param is a numeric id or a slug. The two cannot share one SQL
// comparison: binding a slug against the integer id column fails on
// postgres.
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("id")
		query := withCatalog(db)
		if id, err := strconv.Atoi(param); err == nil {
			query = query.Where("id = ?", id)
		} else {
			query = query.Where("slug = ?", param)
		}

		var product models.Product
		if err := query.First(&product).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
	}
}

// GET /get-products-by-main-category/:categoryId
func GetProductsByMainCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := withCatalog(db).
			Where("main_category_id = ?", c.Param("categoryId")).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /get-products-by-sub-category/:categoryId
func GetProductsBySubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := withCatalog(db).
			Where("sub_category_id = ?", c.Param("categoryId")).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}

// GET /search-product/:searchTerm
func SearchProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := "%" + c.Param("searchTerm") + "%"

		var products []models.Product
		if err := withCatalog(db).
			Where("name LIKE ? OR description LIKE ?", term, term).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "products": products})
	}
}
