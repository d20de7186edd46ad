package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry‐point that wires up the public, user, order,
// and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// 2️⃣ Public catalog routes
	SetupCatalogRoutes(r, db)

	// 3️⃣ User routes (JWT‐protected)
	SetupUserRoutes(r, db)

	// 4️⃣ Order routes (tracking + websocket feed)
	SetupOrderRoutes(r, db)

	// 5️⃣ Admin routes (API‐Key‐protected)
	SetupAdminRoutes(r, db)
}
