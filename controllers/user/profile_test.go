package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
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
		&models.User{},
		&models.Address{},
		&models.PaymentMethod{},
	))

	user := models.User{
		ID:        testUserID,
		Email:     "jess@example.com",
		Name:      "Jess",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&user).Error)
	return db
}

func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
	})

	r.GET("/user", GetUser(db))
	r.PUT("/user", UpdateUser(db))
	r.GET("/user/addresses", GetAddresses(db))
	r.POST("/user/addresses", CreateAddress(db))
	r.PUT("/user/addresses/:id", UpdateAddress(db))
	r.DELETE("/user/addresses/:id", DeleteAddress(db))
	r.GET("/user/payment-methods", GetPaymentMethods(db))
	r.POST("/user/payment-methods", CreatePaymentMethod(db))
	r.DELETE("/user/payment-methods/:id", DeletePaymentMethod(db))
	return r
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

func TestUpdateProfileNotifications(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPut, "/user", gin.H{
		"name": "Jessie",
		"notifications": gin.H{
			"order_updates": true,
			"promotions":    true,
			"newsletter":    false,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", testUserID).Error)
	assert.Equal(t, "Jessie", user.Name)
	assert.True(t, user.Notifications.Promotions)
	assert.False(t, user.Notifications.Newsletter)
}

func TestAddressDefaultIsExclusive(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	home := gin.H{
		"label": "Home", "street": "1 Main St", "city": "Leeds",
		"postal_code": "LS1 1AA", "country": "UK", "is_default": true,
	}
	work := gin.H{
		"label": "Work", "street": "2 Office Rd", "city": "Leeds",
		"postal_code": "LS2 2BB", "country": "UK", "is_default": true,
	}

	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/user/addresses", home).Code)
	require.Equal(t, http.StatusCreated, doJSON(t, r, http.MethodPost, "/user/addresses", work).Code)

	var addresses []models.Address
	require.NoError(t, db.Where("user_id = ?", testUserID).Order("created_at").Find(&addresses).Error)
	require.Len(t, addresses, 2)

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, "Work", a.Label)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestDeleteAddress(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/addresses", gin.H{
		"street": "1 Main St", "city": "Leeds", "postal_code": "LS1 1AA", "country": "UK",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Address
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	require.Equal(t, http.StatusOK,
		doJSON(t, r, http.MethodDelete, "/user/addresses/"+created.ID, nil).Code)
	require.Equal(t, http.StatusNotFound,
		doJSON(t, r, http.MethodDelete, "/user/addresses/"+created.ID, nil).Code)
}

func TestCreatePaymentMethodStoresLast4Only(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/payment-methods", gin.H{
		"card_number": "4111111111111111",
		"brand":       "visa",
		"expiry_mm":   9,
		"expiry_yy":   2028,
		"holder_name": "J Smith",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var method models.PaymentMethod
	require.NoError(t, db.First(&method, "user_id = ?", testUserID).Error)
	assert.Equal(t, "1111", method.Last4)
	assert.NotContains(t, w.Body.String(), "4111111111111111")
}

func TestCreatePaymentMethodRejectsBadNumber(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := doJSON(t, r, http.MethodPost, "/user/payment-methods", gin.H{
		"card_number": "41-not-a-card",
		"brand":       "visa",
		"expiry_mm":   9,
		"expiry_yy":   2028,
		"holder_name": "J Smith",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
