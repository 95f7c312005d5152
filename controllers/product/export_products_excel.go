package productControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

// GET /internal/export/products
// One row per variant.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Preload("Variants.Attributes").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ProductID", "Name", "Slug", "VariantID", "SKU",
			"Price", "Stock", "Attributes",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			for _, v := range p.Variants {
				row := sheet.AddRow()
				row.AddCell().SetValue(p.ID)
				row.AddCell().SetValue(p.Name)
				row.AddCell().SetValue(p.Slug)
				row.AddCell().SetValue(v.ID)
				row.AddCell().SetValue(v.SKU)
				row.AddCell().SetValue(v.Price)
				row.AddCell().SetValue(v.Stock)

				var attrs []string
				for _, a := range v.Attributes {
					attrs = append(attrs, a.Key+"="+a.Value)
				}
				row.AddCell().SetValue(strings.Join(attrs, ","))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to write Excel file"})
		}
	}
}
