package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/vastrakart/ecommerce-api/controllers/cart"
	orderControllers "github.com/vastrakart/ecommerce-api/controllers/order"
	paymentControllers "github.com/vastrakart/ecommerce-api/controllers/payment"
	userControllers "github.com/vastrakart/ecommerce-api/controllers/user"
	"github.com/vastrakart/ecommerce-api/middleware"
	"gorm.io/gorm"
)

// SetupWebRoutes registers the storefront endpoints that need a USER token.
func SetupWebRoutes(r *gin.Engine, db *gorm.DB) {
	web := r.Group("/")
	web.Use(middleware.UserAuth())
	{
		// cart
		web.POST("/add-to-cart", cartControllers.AddToCart(db))
		web.GET("/get-cart", cartControllers.GetCartItems(db))
		web.PATCH("/quantity-update/:id", cartControllers.UpdateCartItemQuantity(db))
		web.DELETE("/clear-cart", cartControllers.ClearCart(db))

		// payment
		web.POST("/create-razorpay-order", paymentControllers.CreateRazorpayOrder())
		web.POST("/verify-payment", paymentControllers.VerifyPayment(db))

		// orders
		web.POST("/create-order", orderControllers.CreateOrder(db))
		web.GET("/get-orders", orderControllers.GetUserOrders(db))
		web.GET("/get-order/:orderId", orderControllers.GetUserOrderByID(db))

		// address book
		web.POST("/add-address", userControllers.CreateAddress(db))
		web.GET("/get-address", userControllers.GetAddresses(db))
		web.PATCH("/set-default-address/:addressId", userControllers.SetDefaultAddress(db))
		web.DELETE("/delete-address/:addressId", userControllers.DeleteAddress(db))

		// profile
		web.GET("/userdetails", userControllers.GetUserDetails(db))
		web.PUT("/update-details", userControllers.UpdateDetails(db))
		web.PUT("/update-password", userControllers.UpdatePassword(db))

		// reviews
		web.POST("/add-review", userControllers.AddReview(db))
	}
}
