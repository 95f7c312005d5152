package productControllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type variantInput struct {
	SKU        string  `json:"sku"`
	Price      float64 `json:"price"`
	Stock      int     `json:"stock"`
	Height     string  `json:"height"`
	Weight     string  `json:"weight"`
	Attributes []struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	} `json:"attributes"`
}

func uploadBaseURL() string {
	base := os.Getenv("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:8080"
	}
	return base
}

func uploadDir() string {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "./uploads"
	}
	return dir
}

// saveUploadHeader stores a multipart file under the uploads dir and
// returns its public URL.
func saveUploadHeader(_ *gin.Context, fieldDir, origName string, save func(dst string) error) (string, error) {
	dir := filepath.Join(uploadDir(), fieldDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), strings.ReplaceAll(origName, " ", "_"))
	if err := save(filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/uploads/%s/%s", uploadBaseURL(), fieldDir, name), nil
}

// POST /admin/products
//
// Multipart body: name, description, mainCategoryId, subCategoryId,
// variants (JSON array), and files named images_<variant index>.
// Product, variants and attributes are created in one transaction.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		description := c.PostForm("description")
		mainCategoryIDStr := c.PostForm("mainCategoryId")
		subCategoryIDStr := c.PostForm("subCategoryId")
		vendorIDStr := c.PostForm("vendorId")
		variantsJSON := c.PostForm("variants")

		var missing []string
		for field, val := range map[string]string{
			"name": name, "mainCategoryId": mainCategoryIDStr,
			"subCategoryId": subCategoryIDStr, "variants": variantsJSON,
		} {
			if val == "" {
				missing = append(missing, field)
			}
		}
		if len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Missing required fields: " + strings.Join(missing, ", "),
			})
			return
		}

		var variants []variantInput
		if err := json.Unmarshal([]byte(variantsJSON), &variants); err != nil || len(variants) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "variants must be a non-empty JSON array"})
			return
		}

		mainCategoryID, _ := strconv.ParseUint(mainCategoryIDStr, 10, 64)
		subCategoryID, _ := strconv.ParseUint(subCategoryIDStr, 10, 64)
		vendorID, _ := strconv.ParseUint(vendorIDStr, 10, 64)

		// Group uploaded files by variant index: images_0, images_1, ...
		imageURLs := make(map[int][]string)
		if form, err := c.MultipartForm(); err == nil {
			for field, files := range form.File {
				var idx int
				if _, err := fmt.Sscanf(field, "images_%d", &idx); err != nil {
					continue
				}
				for _, fh := range files {
					url, err := saveUploadHeader(c, "products", fh.Filename, func(dst string) error {
						return c.SaveUploadedFile(fh, dst)
					})
					if err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save image"})
						return
					}
					imageURLs[idx] = append(imageURLs[idx], url)
				}
			}
		}

		var product models.Product
		err := db.Transaction(func(tx *gorm.DB) error {
			slug, err := uniqueSlug(tx, &models.Product{}, slugify(name))
			if err != nil {
				return err
			}

			product = models.Product{
				Name:           name,
				Slug:           slug,
				Description:    description,
				MainCategoryID: uint(mainCategoryID),
				SubCategoryID:  uint(subCategoryID),
				VendorID:       uint(vendorID),
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}

			for i, v := range variants {
				variant := models.ProductVariant{
					ProductID: product.ID,
					SKU:       v.SKU,
					Price:     v.Price,
					Stock:     v.Stock,
					Height:    v.Height,
					Weight:    v.Weight,
				}
				for _, url := range imageURLs[i] {
					variant.Images = append(variant.Images, models.VariantImage{URL: url})
				}
				for _, attr := range v.Attributes {
					if attr.Key != "" && attr.Value != "" {
						variant.Attributes = append(variant.Attributes, models.VariantAttribute{
							Key:   attr.Key,
							Value: attr.Value,
						})
					}
				}
				if err := tx.Create(&variant).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "productId": product.ID})
	}
}
