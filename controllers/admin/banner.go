package adminControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

func publicBaseURL() string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}

// POST /admin/banners
// Saves the image locally and stores its full URL.
func UploadBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No image uploaded"})
			return
		}

		dir := filepath.Join(uploadDir(), "banners")
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload folder"})
			return
		}

		name := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
		if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, name)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save file"})
			return
		}

		banner := models.Banner{
			Title:    c.PostForm("title"),
			Link:     c.PostForm("link"),
			ImageURL: fmt.Sprintf("%s/uploads/banners/%s", publicBaseURL(), name),
		}
		if err := db.Create(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "DB save failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Banner uploaded", "data": banner})
	}
}

// PUT /admin/banners/:id
// Multipart; only the provided fields change. A new image replaces the
// stored URL and removes the old file.
func UpdateBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Banner not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		updates := map[string]interface{}{}
		if title, ok := c.GetPostForm("title"); ok {
			updates["title"] = title
		}
		if link, ok := c.GetPostForm("link"); ok {
			updates["link"] = link
		}

		if fileHeader, err := c.FormFile("image"); err == nil {
			dir := filepath.Join(uploadDir(), "banners")
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create upload folder"})
				return
			}
			name := fmt.Sprintf("%d_%s", time.Now().Unix(), strings.ReplaceAll(fileHeader.Filename, " ", "_"))
			if err := c.SaveUploadedFile(fileHeader, filepath.Join(dir, name)); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save file"})
				return
			}
			if banner.ImageURL != "" {
				oldPath := strings.Replace(banner.ImageURL, publicBaseURL()+"/uploads", uploadDir(), 1)
				if err := os.Remove(oldPath); err != nil && !os.IsNotExist(err) {
					c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete old file"})
					return
				}
			}
			updates["image_url"] = fmt.Sprintf("%s/uploads/banners/%s", publicBaseURL(), name)
		}

		if len(updates) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "At least one field is required to update."})
			return
		}

		if err := db.Model(&banner).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update banner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner updated successfully", "data": banner})
	}
}

// GET /get-all-banners
func GetAllBanners(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banners []models.Banner
		if err := db.Order("created_at DESC").Find(&banners).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get banners"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "banners": banners})
	}
}

// DELETE /admin/banners/:id
// Removes both the row and the local file.
func DeleteBanner(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var banner models.Banner
		if err := db.First(&banner, c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Banner not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if banner.ImageURL != "" {
			localPath := strings.Replace(banner.ImageURL, publicBaseURL()+"/uploads", uploadDir(), 1)
			if err := os.Remove(localPath); err != nil && !os.IsNotExist(err) {
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete file"})
				return
			}
		}

		if err := db.Delete(&banner).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete banner"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Banner deleted successfully"})
	}
}
