package orderControllers

import (
	"errors"
	"hash/fnv"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MrBanoth/football-shop/models"
)

type TrackingInfo struct {
	OrderRef          string             `json:"order_ref"`
	Status            models.OrderStatus `json:"status"`
	EstimatedDelivery string             `json:"estimated_delivery"`
}

// Statuses a tracked-but-unknown reference can report. Cancelled is excluded:
// the simulation only walks the happy path.
var simulatedStatuses = []models.OrderStatus{
	models.OrderStatusPending,
	models.OrderStatusConfirmed,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

// GET /orders/track/:ref
//
// Public tracking lookup. A reference that matches a stored order reports its
// real status. Anything else gets a simulated status derived from a hash of
// the reference, so repeated lookups of the same reference stay stable.
func TrackOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ref := c.Param("ref")
		if ref == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order reference is required"})
			return
		}

		var order models.Order
		err := db.Where("order_ref = ?", ref).First(&order).Error
		if err == nil {
			c.JSON(http.StatusOK, TrackingInfo{
				OrderRef:          order.OrderRef,
				Status:            order.Status,
				EstimatedDelivery: estimatedDelivery(order.CreatedAt, order.Status),
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to look up order"})
			return
		}

		// Unknown reference: simulate.
		c.JSON(http.StatusOK, TrackingInfo{
			OrderRef:          ref,
			Status:            simulatedStatus(ref),
			EstimatedDelivery: estimatedDelivery(time.Now(), models.OrderStatusPending),
		})
	}
}

func simulatedStatus(ref string) models.OrderStatus {
	h := fnv.New32a()
	h.Write([]byte(ref))
	return simulatedStatuses[h.Sum32()%uint32(len(simulatedStatuses))]
}

func estimatedDelivery(placed time.Time, status models.OrderStatus) string {
	if status == models.OrderStatusDelivered {
		return ""
	}
	return placed.AddDate(0, 0, 5).Format("2006-01-02")
}
