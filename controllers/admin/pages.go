package adminControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type pageInput struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// upsertPage writes the singleton row for one static page slug.
func upsertPage(db *gorm.DB, slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input pageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Content is required"})
			return
		}

		page := models.StaticPage{Slug: slug, Title: input.Title, Content: input.Content}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "content", "updated_at"}),
		}).Create(&page).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Page saved successfully", "data": page})
	}
}

func getPage(db *gorm.DB, slug string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var page models.StaticPage
		if err := db.Where("slug = ?", slug).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Page not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": page})
	}
}

func CreateOrUpdatePrivacyPolicy(db *gorm.DB) gin.HandlerFunc {
	return upsertPage(db, models.PagePrivacyPolicy)
}
func CreateOrUpdateTerms(db *gorm.DB) gin.HandlerFunc { return upsertPage(db, models.PageTerms) }
func CreateOrUpdateAbout(db *gorm.DB) gin.HandlerFunc { return upsertPage(db, models.PageAboutUs) }

func GetPrivacyPolicy(db *gorm.DB) gin.HandlerFunc { return getPage(db, models.PagePrivacyPolicy) }
func GetTermsAndConditions(db *gorm.DB) gin.HandlerFunc {
	return getPage(db, models.PageTerms)
}
func GetAboutUs(db *gorm.DB) gin.HandlerFunc { return getPage(db, models.PageAboutUs) }
