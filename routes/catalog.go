package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	productcontroller "github.com/MrBanoth/football-shop/controllers/product"
)

// SetupCatalogRoutes registers the public “/products/*” endpoints. Browsing
// needs no session.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/new-arrivals", productcontroller.GetNewArrivals(db))
		products.GET("/on-sale", productcontroller.GetOnSale(db))
		products.GET("/featured", productcontroller.GetFeatured(db))
		products.GET("/:id", productcontroller.GetProductByID(db))
	}
}
