package orderControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MrBanoth/football-shop/models"
	"github.com/MrBanoth/football-shop/pricing"
)

type CheckoutInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // e.g. "card", "cod"
	PromoCode     string `json:"promo_code"`
}

// checkoutGuard tracks users with a checkout in flight. The UI disables the
// button too, but the server-side guard is what actually prevents a double
// submission from creating two orders.
type checkoutGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

var guard = checkoutGuard{inFlight: make(map[string]struct{})}

// tryAcquire atomically claims the user's checkout slot. It returns false if
// a checkout is already processing for that user.
func (g *checkoutGuard) tryAcquire(userID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[userID]; busy {
		return false
	}
	g.inFlight[userID] = struct{}{}
	return true
}

func (g *checkoutGuard) release(userID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, userID)
}

// processingDelay simulates the payment round-trip. Overridable via
// CHECKOUT_DELAY_MS so tests don't sleep for real.
func processingDelay() time.Duration {
	if ms := os.Getenv("CHECKOUT_DELAY_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			return time.Duration(n) * time.Millisecond
		}
	}
	return 1500 * time.Millisecond
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

var errEmptyCart = errors.New("cart is empty")

// placeOrder converts the user's cart into an order inside one transaction:
// products are row-locked, stock is verified and deducted, totals come from
// the pricing package, and the cart is cleared.
func placeOrder(db *gorm.DB, userID string, input CheckoutInput) (models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Order{}, errEmptyCart
		}
		return models.Order{}, err
	}
	if len(cart.Items) == 0 {
		return models.Order{}, errEmptyCart
	}

	summary := pricing.Summarize(cart.Items, input.PromoCode)

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		var orderItems []models.OrderItem

		// Row locks only exist on postgres; sqlite serializes writers anyway.
		q := tx
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		for _, item := range cart.Items {
			var product models.Product
			if err := q.First(&product, "id = ?", item.ProductID).Error; err != nil {
				return err
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.ProductName)
			}

			// Deduct stock
			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			orderItems = append(orderItems, models.OrderItem{
				ProductID:    item.ProductID,
				Size:         item.Size,
				Color:        item.Color,
				ProductName:  item.ProductName,
				ProductImage: item.ProductImage,
				ProductPrice: item.ProductPrice,
				Quantity:     item.Quantity,
			})
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			Subtotal:      summary.Subtotal,
			ShippingCost:  summary.Shipping,
			PromoCode:     summary.PromoCode,
			PromoDiscount: summary.PromoDiscount,
			TotalAmount:   summary.Total,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPaid, // simulated payment always succeeds
			PaymentMethod: input.PaymentMethod,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// POST /user/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !guard.tryAcquire(userID) {
			c.JSON(http.StatusConflict, gin.H{"error": "Checkout already in progress"})
			return
		}
		defer guard.release(userID)

		// Simulated payment round-trip.
		time.Sleep(processingDelay())

		order, err := placeOrder(db, userID, input)
		if err != nil {
			if errors.Is(err, errEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"order_ref":    order.OrderRef,
			"subtotal":     order.Subtotal,
			"shipping":     order.ShippingCost,
			"total_amount": order.TotalAmount,
			"order":        order,
		})
	}
}
