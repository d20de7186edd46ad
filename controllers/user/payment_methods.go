package userControllers

import (
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MrBanoth/football-shop/models"
)

type PaymentMethodInput struct {
	CardNumber string `json:"card_number" binding:"required"`
	Brand      string `json:"brand" binding:"required"`
	ExpiryMM   int    `json:"expiry_mm" binding:"required,min=1,max=12"`
	ExpiryYY   int    `json:"expiry_yy" binding:"required"`
	HolderName string `json:"holder_name" binding:"required"`
	IsDefault  bool   `json:"is_default"`
}

var digitsOnly = regexp.MustCompile(`^[0-9]{12,19}$`)

// GET /user/payment-methods
func GetPaymentMethods(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var methods []models.PaymentMethod
		if err := db.Where("user_id = ?", userID).Order("created_at").Find(&methods).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment methods"})
			return
		}
		c.JSON(http.StatusOK, methods)
	}
}

// POST /user/payment-methods
//
// The card number is reduced to its last four digits here at the boundary;
// the full PAN is never stored.
func CreatePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")

		var input PaymentMethodInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !digitsOnly.MatchString(input.CardNumber) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card number"})
			return
		}

		method := models.PaymentMethod{
			UserID:     userID.(string),
			Brand:      input.Brand,
			Last4:      input.CardNumber[len(input.CardNumber)-4:],
			ExpiryMM:   input.ExpiryMM,
			ExpiryYY:   input.ExpiryYY,
			HolderName: input.HolderName,
			IsDefault:  input.IsDefault,
			CreatedAt:  time.Now(),
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if method.IsDefault {
				if err := tx.Model(&models.PaymentMethod{}).
					Where("user_id = ?", userID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&method).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment method"})
			return
		}
		c.JSON(http.StatusCreated, method)
	}
}

// DELETE /user/payment-methods/:id
func DeletePaymentMethod(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		methodID := c.Param("id")

		result := db.Where("id = ? AND user_id = ?", methodID, userID).Delete(&models.PaymentMethod{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment method"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment method not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment method deleted"})
	}
}
