package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vastrakart/ecommerce-api/middleware"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testKeySecret = "test_key_secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Payment{}))
	return db
}

func paymentRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, "USER")
	})
	r.POST("/verify-payment", VerifyPayment(db))
	return r
}

func sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(testKeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func verifyRequest(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/verify-payment", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyPaymentValidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", testKeySecret)
	db := setupTestDB(t)
	r := paymentRouter(db, 42)

	w := verifyRequest(t, r, gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  sign("order_abc", "pay_xyz"),
		"amount":              249900,
		"currency":            "INR",
		"product_id":          3,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var payment models.Payment
	require.NoError(t, db.First(&payment).Error)
	assert.Equal(t, "success", payment.Status)
	assert.Equal(t, uint(42), payment.UserID)
	assert.Equal(t, "order_abc", payment.OrderID)
	// 249900 paise -> 2499 rupees
	assert.Equal(t, int64(2499), payment.Amount)
}

func TestVerifyPaymentTamperedSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", testKeySecret)
	db := setupTestDB(t)
	r := paymentRouter(db, 42)

	sig := []byte(sign("order_abc", "pay_xyz"))
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}

	w := verifyRequest(t, r, gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  string(sig),
		"amount":              249900,
		"currency":            "INR",
		"product_id":          3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Payment verification failed", body["message"])

	// Failed attempts are still written to the audit trail.
	var payment models.Payment
	require.NoError(t, db.First(&payment).Error)
	assert.Equal(t, "failed", payment.Status)
}

func TestVerifyPaymentMissingFields(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", testKeySecret)
	db := setupTestDB(t)
	r := paymentRouter(db, 42)

	w := verifyRequest(t, r, gin.H{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		// signature omitted
		"amount":     249900,
		"currency":   "INR",
		"product_id": 3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields", body["message"])

	var count int64
	db.Model(&models.Payment{}).Count(&count)
	assert.Zero(t, count)
}

func TestComputeSignatureMatchesGateway(t *testing.T) {
	// Known-answer check against an independently computed digest.
	expected := sign("order_1", "pay_1")
	assert.Equal(t, expected, computeSignature("order_1", "pay_1", testKeySecret))
	assert.NotEqual(t, expected, computeSignature("order_1", "pay_2", testKeySecret))
	assert.NotEqual(t, expected, computeSignature("order_1", "pay_1", "other_secret"))
}
