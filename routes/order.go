package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/MrBanoth/football-shop/controllers/order"
)

// SetupOrderRoutes registers the public order surface: tracking lookups and
// the realtime feed consumed by the back office.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// Public order tracking by reference
		orders.GET("/track/:ref", orderControllers.TrackOrderHandler(db))

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)
	}
}
