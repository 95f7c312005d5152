package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/vastrakart/ecommerce-api/controllers/order"
	productControllers "github.com/vastrakart/ecommerce-api/controllers/product"
	"github.com/vastrakart/ecommerce-api/middleware"
	"gorm.io/gorm"
)

// SetupInternalRoutes registers the back-office reporting endpoints used by
// non-interactive tooling. Guarded by X-API-KEY instead of a JWT.
func SetupInternalRoutes(r *gin.Engine, db *gorm.DB) {
	internal := r.Group("/internal")
	internal.Use(middleware.ValidateAPIKey)
	{
		internal.GET("/export/orders", orderControllers.ExportOrdersToExcel(db))
		internal.GET("/export/products", productControllers.ExportProductsToExcel(db))
	}
}
