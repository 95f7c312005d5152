package paymentControllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/middleware"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type verifyPaymentInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id" binding:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	RazorpaySignature string `json:"razorpay_signature" binding:"required"`
	Amount            int64  `json:"amount" binding:"required"`
	Currency          string `json:"currency" binding:"required"`
	ProductID         uint   `json:"product_id" binding:"required"`
}

// computeSignature recreates the gateway's HMAC-SHA256 over
// "<orderID>|<paymentID>" with the shared key secret.
func computeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// POST /verify-payment
//
// The Payment row is written whether or not the signature matches; failed
// verifications are part of the audit trail.
func VerifyPayment(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input verifyPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
			return
		}

		expected := computeSignature(input.RazorpayOrderID, input.RazorpayPaymentID, os.Getenv("RAZORPAY_KEY_SECRET"))
		isValid := subtle.ConstantTimeCompare([]byte(expected), []byte(input.RazorpaySignature)) == 1

		status := "failed"
		if isValid {
			status = "success"
		}

		payment := models.Payment{
			OrderID:   input.RazorpayOrderID,
			PaymentID: input.RazorpayPaymentID,
			Signature: input.RazorpaySignature,
			Amount:    input.Amount / 100, // gateway amount is in paise
			Currency:  input.Currency,
			UserID:    userID,
			ProductID: input.ProductID,
			Status:    status,
		}
		if err := db.Create(&payment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if !isValid {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
	}
}
