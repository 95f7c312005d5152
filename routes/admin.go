package routes

import (
	"github.com/gin-gonic/gin"
	adminControllers "github.com/vastrakart/ecommerce-api/controllers/admin"
	categoryControllers "github.com/vastrakart/ecommerce-api/controllers/category"
	orderControllers "github.com/vastrakart/ecommerce-api/controllers/order"
	productControllers "github.com/vastrakart/ecommerce-api/controllers/product"
	"github.com/vastrakart/ecommerce-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires an ADMIN
// token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminAuth())
	{
		// user management
		adminGroup.GET("/users", adminControllers.GetAllUsers(db))
		adminGroup.GET("/users/:id", adminControllers.GetUserByID(db))
		adminGroup.PUT("/users/:id/password", adminControllers.UpdateUserPassword(db))

		// catalog
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productControllers.CreateProduct(db))
			productAdmin.PUT("/:id", productControllers.UpdateProduct(db))
			productAdmin.DELETE("/:id", productControllers.DeleteProduct(db))
		}
		adminGroup.PUT("/variants/:id", productControllers.UpdateVariant(db))

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", categoryControllers.AddCategory(db))
			categoryAdmin.PUT("/:id", categoryControllers.UpdateMainCategory(db))
			categoryAdmin.DELETE("/:id", categoryControllers.DeleteMainCategory(db))
		}
		subCategoryAdmin := adminGroup.Group("/sub-categories")
		{
			subCategoryAdmin.POST("", categoryControllers.AddSubCategory(db))
			subCategoryAdmin.GET("/:id", categoryControllers.GetSubCategoryByID(db))
			subCategoryAdmin.PUT("/:id", categoryControllers.UpdateSubCategory(db))
			subCategoryAdmin.DELETE("/:id", categoryControllers.DeleteSubCategory(db))
		}

		// orders
		adminGroup.GET("/orders", orderControllers.GetAllOrdersAdmin(db))
		adminGroup.GET("/orders/:id", orderControllers.GetOrderByIDAdmin(db))
		adminGroup.PATCH("/order-item-status", orderControllers.UpdateOrderItemStatusAdmin(db))
		adminGroup.GET("/orders-ws", orderControllers.OrderWebSocketHandler)

		// content
		bannerAdmin := adminGroup.Group("/banners")
		{
			bannerAdmin.POST("", adminControllers.UploadBanner(db))
			bannerAdmin.GET("", adminControllers.GetAllBanners(db))
			bannerAdmin.PUT("/:id", adminControllers.UpdateBanner(db))
			bannerAdmin.DELETE("/:id", adminControllers.DeleteBanner(db))
		}
		adminGroup.POST("/privacy-policy", adminControllers.CreateOrUpdatePrivacyPolicy(db))
		adminGroup.POST("/terms-and-conditions", adminControllers.CreateOrUpdateTerms(db))
		adminGroup.POST("/about-us", adminControllers.CreateOrUpdateAbout(db))

		// settings + reporting
		adminGroup.POST("/settings", adminControllers.SetSettings(db))
		adminGroup.GET("/settings", adminControllers.GetSettings(db))
		adminGroup.GET("/transactions", adminControllers.GetAllTransactions(db))
		adminGroup.GET("/contact-queries", adminControllers.GetContactQueries(db))
	}
}
