package orderControllers

import (
	"bytes"
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

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductVariant{},
		&models.VariantAttribute{},
		&models.Cart{},
		&models.CartItem{},
		&models.CartItemAttribute{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// seedCart builds a cart for userID with one line item: 2x a 250-rupee
// variant sold by vendor 7, selected as color=red.
func seedCart(t *testing.T, db *gorm.DB, userID uint) {
	t.Helper()
	product := models.Product{
		Name:     "Brass Lamp",
		Slug:     "brass-lamp",
		VendorID: 7,
		Variants: []models.ProductVariant{
			{
				SKU:   "LAMP-001",
				Price: 250,
				Attributes: []models.VariantAttribute{
					{Key: "color", Value: "red"},
				},
			},
		},
	}
	require.NoError(t, db.Create(&product).Error)
	variant := product.Variants[0]

	cart := models.Cart{
		UserID: userID,
		Items: []models.CartItem{
			{
				VariantID: variant.ID,
				Quantity:  2,
				Price:     variant.Price,
				Attributes: []models.CartItemAttribute{
					{VariantAttributeID: variant.Attributes[0].ID},
				},
			},
		},
	}
	require.NoError(t, db.Create(&cart).Error)
}

func orderRouter(db *gorm.DB, userID uint, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Set(middleware.CtxRole, role)
	})
	r.POST("/create-order", CreateOrder(db))
	r.GET("/get-orders", GetUserOrders(db))
	r.PATCH("/vendor/order-item-status", UpdateOrderItemStatusVendor(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	r := orderRouter(db, 1, "USER")

	w := postJSON(t, r, "/create-order", gin.H{
		"paymentMode": "razorpay", "orderStatus": "SUCCESS", "totalAmount": 500,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Cart is empty.", body["message"])

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderInvalidStatus(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1)
	r := orderRouter(db, 1, "USER")

	w := postJSON(t, r, "/create-order", gin.H{
		"paymentMode": "razorpay", "orderStatus": "REFUNDED", "totalAmount": 500,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderSuccessConfirmsAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1)
	r := orderRouter(db, 1, "USER")

	w := postJSON(t, r, "/create-order", gin.H{
		"paymentMode":    "razorpay",
		"paymentOrderId": "order_abc",
		"orderStatus":    "SUCCESS",
		"totalAmount":    500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	assert.Equal(t, models.PaymentResultSuccess, order.OrderStatus)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.NotEmpty(t, order.OrderRef)
	assert.Equal(t, 500.0, order.TotalAmount)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 250.0, item.Price)
	assert.Equal(t, uint(7), item.VendorID)
	assert.Equal(t, models.OrderItemPending, item.Status)

	// Attribute selection is stored as a flattened copy, detached from
	// the catalog rows.
	var pairs []map[string]string
	require.NoError(t, json.Unmarshal([]byte(item.Attributes), &pairs))
	require.Len(t, pairs, 1)
	assert.Equal(t, "color", pairs[0]["key"])
	assert.Equal(t, "red", pairs[0]["value"])

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.CartItemAttribute{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderPendingLeavesCart(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1)
	r := orderRouter(db, 1, "USER")

	w := postJSON(t, r, "/create-order", gin.H{
		"paymentMode": "cod", "orderStatus": "PENDING", "totalAmount": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.PaymentResultPending, order.OrderStatus)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateOrderFailLeavesCart(t *testing.T) {
	db := setupTestDB(t)
	seedCart(t, db, 1)
	r := orderRouter(db, 1, "USER")

	w := postJSON(t, r, "/create-order", gin.H{
		"paymentMode": "razorpay", "orderStatus": "fail", "totalAmount": 500,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	assert.Equal(t, models.PaymentResultFail, order.OrderStatus)
	assert.Equal(t, models.OrderStatusPending, order.Status)

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateOrderItemStatusVendorOwnership(t *testing.T) {
	db := setupTestDB(t)
	order := models.Order{
		OrderRef: "ref-1",
		UserID:   1,
		Items: []models.OrderItem{
			{VendorID: 7, Quantity: 1, Price: 250, Status: models.OrderItemPending},
		},
	}
	require.NoError(t, db.Create(&order).Error)
	itemID := order.Items[0].ID

	// A different vendor cannot touch the item.
	other := orderRouter(db, 8, "VENDOR")
	req := httptest.NewRequest(http.MethodPatch, "/vendor/order-item-status",
		bytes.NewReader(mustJSON(t, gin.H{"OrderItemId": itemID, "OrderItemStatus": "SHIPPED"})))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	other.ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The owning vendor can.
	owner := orderRouter(db, 7, "VENDOR")
	req = httptest.NewRequest(http.MethodPatch, "/vendor/order-item-status",
		bytes.NewReader(mustJSON(t, gin.H{"OrderItemId": itemID, "OrderItemStatus": "shipped"})))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	owner.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var item models.OrderItem
	require.NoError(t, db.First(&item, itemID).Error)
	assert.Equal(t, models.OrderItemShipped, item.Status)
}

func TestMapPaymentResult(t *testing.T) {
	result, err := mapPaymentResult("success")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentResultSuccess, result)

	_, err = mapPaymentResult("REFUNDED")
	assert.Error(t, err)
}

func mustJSON(t *testing.T, v interface{}) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}
