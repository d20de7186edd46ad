package productcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MrBanoth/football-shop/models"
)

// The storefront's curated shelves: new arrivals, sale items, featured
// collections.

// GET /products/new-arrivals
//
// Products created within the last 30 days.
func GetNewArrivals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cutoff := time.Now().AddDate(0, 0, -30)

		var products []models.Product
		if err := db.Where("created_at > ?", cutoff).
			Order("created_at DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch new arrivals"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/on-sale
func GetOnSale(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("discount > 0").
			Order("discount DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sale products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /products/featured
func GetFeatured(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("featured = ?", true).
			Order("rating DESC").
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
