package categoryControllers

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugifyCategory(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = nonSlug.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "category"
	}
	return s
}

type categoryInput struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

type subCategoryInput struct {
	Name           string `json:"name" binding:"required"`
	MainCategoryID uint   `json:"mainCategoryId" binding:"required"`
	Image          string `json:"image"`
}

func catSlug(db *gorm.DB, model interface{}, name string) (string, error) {
	base := slugifyCategory(name)
	slug := base
	for count := 1; ; count++ {
		var n int64
		if err := db.Model(model).Where("slug = ?", slug).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return slug, nil
		}
		slug = base + "-" + strconv.Itoa(count)
	}
}

// POST /admin/categories
func AddCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
			return
		}

		slug, err := catSlug(db, &models.MainCategory{}, input.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		category := models.MainCategory{Name: input.Name, Slug: slug, Image: input.Image}
		if err := db.Create(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Category already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Category created", "category": category})
	}
}

// GET /get-all-category
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.MainCategory
		if err := db.Preload("SubCategories").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "categories": categories})
	}
}

// PUT /admin/categories/:id
func UpdateMainCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.MainCategory
		if err := db.First(&category, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found."})
			return
		}

		var input categoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name is required"})
			return
		}

		updates := map[string]interface{}{"name": input.Name}
		if input.Name != category.Name {
			slug, err := catSlug(db, &models.MainCategory{}, input.Name)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
				return
			}
			updates["slug"] = slug
		}
		if input.Image != "" {
			updates["image"] = input.Image
		}

		if err := db.Model(&category).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category updated", "category": category})
	}
}

// DELETE /admin/categories/:id
func DeleteMainCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.MainCategory{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Category not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully"})
	}
}

// POST /admin/sub-categories
func AddSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input subCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Name and mainCategoryId are required"})
			return
		}

		var parent models.MainCategory
		if err := db.First(&parent, input.MainCategoryID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Main category not found."})
			return
		}

		slug, err := catSlug(db, &models.SubCategory{}, input.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		sub := models.SubCategory{
			Name:           input.Name,
			Slug:           slug,
			MainCategoryID: input.MainCategoryID,
			Image:          input.Image,
		}
		if err := db.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create sub category"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Sub category created", "subCategory": sub})
	}
}

// GET /get-all-sub-category
func GetAllSubCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subs []models.SubCategory
		if err := db.Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "subCategories": subs})
	}
}

// GET /get-all-sub-category-by-main-category/:categoryId
func GetSubCategoriesByMainCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var subs []models.SubCategory
		if err := db.Where("main_category_id = ?", c.Param("categoryId")).Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "subCategories": subs})
	}
}

// GET /admin/sub-categories/:id
func GetSubCategoryByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.SubCategory
		if err := db.Preload("MainCategory").First(&sub, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sub category not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "subCategory": sub})
	}
}

type updateSubCategoryInput struct {
	Name           string `json:"name"`
	MainCategoryID uint   `json:"mainCategoryId"`
	Image          string `json:"image"`
}

// PUT /admin/sub-categories/:id
// Only the provided fields change; a new name regenerates the slug, a new
// parent must exist.
func UpdateSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sub models.SubCategory
		if err := db.First(&sub, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sub category not found."})
			return
		}

		var input updateSubCategoryInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		updates := map[string]interface{}{}
		if input.Name != "" && input.Name != sub.Name {
			slug, err := catSlug(db, &models.SubCategory{}, input.Name)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
				return
			}
			updates["name"] = input.Name
			updates["slug"] = slug
		}
		if input.MainCategoryID != 0 {
			var parent models.MainCategory
			if err := db.First(&parent, input.MainCategoryID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Main category not found."})
				return
			}
			updates["main_category_id"] = input.MainCategoryID
		}
		if input.Image != "" {
			updates["image"] = input.Image
		}
		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field is required to update."})
			return
		}

		if err := db.Model(&sub).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update sub category"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sub category updated", "subCategory": sub})
	}
}

// DELETE /admin/sub-categories/:id
func DeleteSubCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Delete(&models.SubCategory{}, c.Param("id"))
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete sub category"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Sub category not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sub category deleted successfully"})
	}
}
