package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/MrBanoth/football-shop/controllers/cart"
	orderControllers "github.com/MrBanoth/football-shop/controllers/order"
	userControllers "github.com/MrBanoth/football-shop/controllers/user"
	wishlistControllers "github.com/MrBanoth/football-shop/controllers/wishlist"
	"github.com/MrBanoth/football-shop/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Addresses ────────────────
		addressGroup := userGroup.Group("/addresses")
		{
			addressGroup.GET("", userControllers.GetAddresses(db))
			addressGroup.POST("", userControllers.CreateAddress(db))
			addressGroup.PUT("/:id", userControllers.UpdateAddress(db))
			addressGroup.DELETE("/:id", userControllers.DeleteAddress(db))
		}

		// ──────────────── Payment Methods ────────────────
		paymentGroup := userGroup.Group("/payment-methods")
		{
			paymentGroup.GET("", userControllers.GetPaymentMethods(db))
			paymentGroup.POST("", userControllers.CreatePaymentMethod(db))
			paymentGroup.DELETE("/:id", userControllers.DeletePaymentMethod(db))
		}

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/", cartControllers.AddToCart(db))
			cartGroup.PUT("/", cartControllers.UpdateQuantity(db))
			cartGroup.GET("/contains/:product_id", cartControllers.ContainsProduct(db))
			cartGroup.DELETE("/:product_id", cartControllers.RemoveCartItem(db))
			cartGroup.DELETE("/", cartControllers.ClearCart(db))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("", wishlistControllers.AddToWishlist(db))
			wishlistGroup.GET("/contains/:product_id", wishlistControllers.ContainsProduct(db))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
			wishlistGroup.DELETE("", wishlistControllers.ClearWishlist(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
		userGroup.GET("/orders/:orderID", orderControllers.GetOrderByIDHandler(db))
	}
}
