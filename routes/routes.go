package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth + storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// User routes (JWT, USER role)
	SetupWebRoutes(r, db)

	// Admin routes (JWT, ADMIN role)
	SetupAdminRoutes(r, db)

	// Vendor routes (JWT, VENDOR role)
	SetupVendorRoutes(r, db)

	// Back-office reporting (API key)
	SetupInternalRoutes(r, db)
}
