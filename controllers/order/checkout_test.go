package orderControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MrBanoth/football-shop/models"
)

const testUserID = "user-1"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
	})

	r.POST("/user/checkout", CheckoutHandler(db))
	r.GET("/user/orders", GetUserOrdersHandler(db))
	r.GET("/user/orders/:orderID", GetOrderByIDHandler(db))
	r.GET("/orders/track/:ref", TrackOrderHandler(db))
	return r
}

func seedCartWithProduct(t *testing.T, db *gorm.DB, price float64, stock, qty int) models.Product {
	t.Helper()

	product := models.Product{
		Name:     "Test Boots",
		Price:    price,
		Category: models.CategoryShoes,
		Images:   pq.StringArray{"/images/products/test.jpg"},
		Stock:    stock,
	}
	require.NoError(t, db.Create(&product).Error)

	cart := models.Cart{UserID: testUserID}
	require.NoError(t, db.Where("user_id = ?", testUserID).FirstOrCreate(&cart).Error)

	item := models.CartItem{
		CartID:       cart.CartID,
		ProductID:    product.ID,
		ProductName:  product.Name,
		ProductPrice: product.Price,
		ProductStock: product.Stock,
		Quantity:     qty,
		AddedAt:      time.Now(),
	}
	require.NoError(t, db.Create(&item).Error)
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutPlacesOrderAndClearsCart(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	product := seedCartWithProduct(t, db, 89.99, 10, 2)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		OrderRef    string       `json:"order_ref"`
		Subtotal    float64      `json:"subtotal"`
		Shipping    float64      `json:"shipping"`
		TotalAmount float64      `json:"total_amount"`
		Order       models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.OrderRef)
	assert.Equal(t, 179.98, resp.Subtotal)
	assert.Equal(t, 0.0, resp.Shipping) // above the free-shipping threshold
	assert.Equal(t, 179.98, resp.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, resp.Order.Status)
	assert.Equal(t, models.PaymentStatusPaid, resp.Order.PaymentStatus)
	require.Len(t, resp.Order.Items, 1)

	// Stock was deducted.
	var updated models.Product
	require.NoError(t, db.First(&updated, product.ID).Error)
	assert.Equal(t, 8, updated.Stock)

	// Cart was cleared.
	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCheckoutFlatShippingUnderThreshold(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	seedCartWithProduct(t, db, 50.00, 10, 3) // subtotal exactly 150: fee applies

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "cod"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Subtotal    float64 `json:"subtotal"`
		Shipping    float64 `json:"shipping"`
		TotalAmount float64 `json:"total_amount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 150.0, resp.Subtotal)
	assert.Equal(t, 10.0, resp.Shipping)
	assert.Equal(t, 160.0, resp.TotalAmount)
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutInsufficientStock(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	product := seedCartWithProduct(t, db, 20, 5, 3)

	// Stock dropped after the item was added to the cart.
	require.NoError(t, db.Model(&product).Update("stock", 1).Error)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// No order was created and the cart is intact.
	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
	var items int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&items).Error)
	assert.EqualValues(t, 1, items)
}

func TestCheckoutAppliesPromoCode(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	seedCartWithProduct(t, db, 50.00, 10, 2)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{
		"payment_method": "card",
		"promo_code":     "WELCOME10",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Subtotal    float64      `json:"subtotal"`
		TotalAmount float64      `json:"total_amount"`
		Order       models.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.Subtotal)
	assert.Equal(t, 10.0, resp.Order.PromoDiscount)
	assert.Equal(t, "WELCOME10", resp.Order.PromoCode)
	assert.Equal(t, 100.0, resp.TotalAmount) // 100 - 10 + 10 shipping
}

func TestCheckoutRejectsConcurrentSubmission(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "200")
	db := setupTestDB(t)
	r := newTestRouter(db)
	seedCartWithProduct(t, db, 30, 10, 1)

	codes := make([]int, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, codes)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 1, orders)
}

func TestGetUserOrdersAfterCheckout(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	seedCartWithProduct(t, db, 30, 10, 1)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
	require.Equal(t, http.StatusCreated, w.Code)

	var placed struct {
		OrderRef string `json:"order_ref"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	w = doJSON(t, r, http.MethodGet, "/user/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)

	// Lookup by reference works too.
	w = doJSON(t, r, http.MethodGet, "/user/orders/"+placed.OrderRef, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTrackKnownOrder(t *testing.T) {
	t.Setenv("CHECKOUT_DELAY_MS", "0")
	db := setupTestDB(t)
	r := newTestRouter(db)
	seedCartWithProduct(t, db, 30, 10, 1)

	w := doJSON(t, r, http.MethodPost, "/user/checkout", gin.H{"payment_method": "card"})
	require.Equal(t, http.StatusCreated, w.Code)
	var placed struct {
		OrderRef string `json:"order_ref"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &placed))

	w = doJSON(t, r, http.MethodGet, "/orders/track/"+placed.OrderRef, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var info TrackingInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, placed.OrderRef, info.OrderRef)
	assert.Equal(t, models.OrderStatusPending, info.Status)
}

func TestTrackUnknownOrderIsStable(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	first := doJSON(t, r, http.MethodGet, "/orders/track/ORD-MISSING-1", nil)
	second := doJSON(t, r, http.MethodGet, "/orders/track/ORD-MISSING-1", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	var a, b TrackingInfo
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &a))
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &b))
	assert.Equal(t, a.Status, b.Status)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	require.Error(t, err)
}
