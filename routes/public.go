package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/auth"
	adminControllers "github.com/vastrakart/ecommerce-api/controllers/admin"
	categoryControllers "github.com/vastrakart/ecommerce-api/controllers/category"
	productControllers "github.com/vastrakart/ecommerce-api/controllers/product"
	userControllers "github.com/vastrakart/ecommerce-api/controllers/user"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers everything reachable without a token:
// auth, catalog browsing, banners and static pages.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	// auth
	r.POST("/register", auth.RegisterUser(db))
	r.POST("/login", auth.LoginUser(db))
	r.POST("/admin/register", auth.RegisterAdmin(db))
	r.POST("/admin/login", auth.LoginAdmin(db))
	r.POST("/vendor/register", auth.RegisterVendor(db))
	r.POST("/vendor/login", auth.LoginVendor(db))

	// banners
	r.GET("/get-all-banners", adminControllers.GetAllBanners(db))

	// categories
	r.GET("/get-all-category", categoryControllers.GetAllCategories(db))
	r.GET("/get-all-sub-category", categoryControllers.GetAllSubCategories(db))
	r.GET("/get-all-sub-category-by-main-category/:categoryId", categoryControllers.GetSubCategoriesByMainCategory(db))

	// products
	r.GET("/get-all-products", productControllers.GetAllProducts(db))
	r.GET("/get-products/:id", productControllers.GetProductByID(db))
	r.GET("/get-products-by-main-category/:categoryId", productControllers.GetProductsByMainCategory(db))
	r.GET("/get-products-by-sub-category/:categoryId", productControllers.GetProductsBySubCategory(db))
	r.GET("/search-product/:searchTerm", productControllers.SearchProducts(db))

	// static pages
	r.GET("/get-privacy-policy", adminControllers.GetPrivacyPolicy(db))
	r.GET("/get-terms-and-conditions", adminControllers.GetTermsAndConditions(db))
	r.GET("/get-about-us", adminControllers.GetAboutUs(db))
	r.POST("/add-contact-form", userControllers.AddContactForm(db))
}
