package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/vastrakart/ecommerce-api/controllers/order"
	"github.com/vastrakart/ecommerce-api/middleware"
	"gorm.io/gorm"
)

// SetupVendorRoutes registers all "/vendor/*" endpoints. Requires a VENDOR
// token. Vendors only ever see their own order items.
func SetupVendorRoutes(r *gin.Engine, db *gorm.DB) {
	vendorGroup := r.Group("/vendor")
	vendorGroup.Use(middleware.VendorAuth())
	{
		vendorGroup.GET("/orders", orderControllers.GetVendorOrders(db))
		vendorGroup.GET("/orders/:id", orderControllers.GetVendorOrderByID(db))
		vendorGroup.PATCH("/order-item-status", orderControllers.UpdateOrderItemStatusVendor(db))
	}
}
