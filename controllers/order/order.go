package orderControllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vastrakart/ecommerce-api/middleware"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type CreateOrderInput struct {
	PaymentMode    string  `json:"paymentMode" binding:"required"`
	PaymentOrderID string  `json:"paymentOrderId"`
	OrderStatus    string  `json:"orderStatus" binding:"required"`
	AddressID      uint    `json:"addressId"`
	GST            float64 `json:"gst"`
	Discount       float64 `json:"discount"`
	CouponCode     string  `json:"couponCode"`
	TotalAmount    float64 `json:"totalAmount" binding:"required"`
	Notes          string  `json:"notes"`
}

type UpdateOrderItemStatusInput struct {
	OrderItemID     uint   `json:"OrderItemId" binding:"required"`
	OrderItemStatus string `json:"OrderItemStatus" binding:"required"`
}

type attributePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

func mapPaymentResult(status string) (models.PaymentResult, error) {
	switch strings.ToUpper(status) {
	case string(models.PaymentResultSuccess):
		return models.PaymentResultSuccess, nil
	case string(models.PaymentResultFail):
		return models.PaymentResultFail, nil
	case string(models.PaymentResultPending):
		return models.PaymentResultPending, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func mapOrderItemStatus(status string) (models.OrderItemStatus, error) {
	switch strings.ToUpper(status) {
	case string(models.OrderItemPending):
		return models.OrderItemPending, nil
	case string(models.OrderItemShipped):
		return models.OrderItemShipped, nil
	case string(models.OrderItemDelivered):
		return models.OrderItemDelivered, nil
	case string(models.OrderItemCancelled):
		return models.OrderItemCancelled, nil
	default:
		return "", errors.New("invalid order item status")
	}
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// POST /create-order
//
// Snapshots the cart into an immutable order. The snapshot and the
// conditional cart clear run in one transaction: a concurrent request
// against the same cart fully precedes or fully follows.
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		result, err := mapPaymentResult(input.OrderStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var order models.Order
		err = db.Transaction(func(tx *gorm.DB) error {
			var cart models.Cart
			if err := tx.
				Preload("Items.Variant.Product").
				Preload("Items.Attributes.VariantAttribute").
				Where("user_id = ?", userID).
				First(&cart).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			if cart.ID == 0 || len(cart.Items) == 0 {
				return &apiError{http.StatusBadRequest, "Cart is empty."}
			}

			orderItems := make([]models.OrderItem, 0, len(cart.Items))
			for _, item := range cart.Items {
				pairs := make([]attributePair, 0, len(item.Attributes))
				for _, link := range item.Attributes {
					if link.VariantAttribute != nil {
						pairs = append(pairs, attributePair{
							Key:   link.VariantAttribute.Key,
							Value: link.VariantAttribute.Value,
						})
					}
				}
				// Flattened copy: the order stays readable after catalog
				// attribute rows are edited or deleted.
				flattened, err := json.Marshal(pairs)
				if err != nil {
					return err
				}

				orderItem := models.OrderItem{
					VariantID:  item.VariantID,
					Quantity:   item.Quantity,
					Price:      item.Price,
					Attributes: string(flattened),
					Status:     models.OrderItemPending,
				}
				if item.Variant != nil {
					orderItem.ProductID = item.Variant.ProductID
					if item.Variant.Product != nil {
						orderItem.VendorID = item.Variant.Product.VendorID
					}
				}
				orderItems = append(orderItems, orderItem)
			}

			status := models.OrderStatusPending
			if result == models.PaymentResultSuccess {
				status = models.OrderStatusConfirmed
			}

			order = models.Order{
				OrderRef:       generateOrderRef(),
				UserID:         userID,
				AddressID:      input.AddressID,
				TotalAmount:    input.TotalAmount,
				GST:            input.GST,
				Discount:       input.Discount,
				CouponCode:     input.CouponCode,
				PaymentMode:    input.PaymentMode,
				PaymentOrderID: input.PaymentOrderID,
				OrderStatus:    result,
				Status:         status,
				Notes:          input.Notes,
				Items:          orderItems,
			}
			if err := tx.Create(&order).Error; err != nil {
				return err
			}

			// Only a successful payment clears the cart; a failed or pending
			// checkout leaves it intact for a retry.
			if result == models.PaymentResultSuccess {
				itemIDs := tx.Model(&models.CartItem{}).Select("id").Where("cart_id = ?", cart.ID)
				if err := tx.Where("cart_item_id IN (?)", itemIDs).Delete(&models.CartItemAttribute{}).Error; err != nil {
					return err
				}
				if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
					return err
				}
			}
			return nil
		})

		if err != nil {
			var ae *apiError
			if errors.As(err, &ae) {
				c.JSON(ae.status, gin.H{"success": false, "message": ae.message})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if order.Status == models.OrderStatusConfirmed {
			broadcastNewOrder(order)
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Order created", "order": order})
	}
}

// GET /get-orders
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /get-order/:orderId
func GetUserOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.
			Preload("Items").
			Where("id = ? AND user_id = ?", c.Param("orderId"), userID).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GET /admin/orders
func GetAllOrdersAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /admin/orders/:id
func GetOrderByIDAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id = ?", c.Param("id")).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// GET /vendor/orders
// Returns orders containing at least one of the vendor's items.
func GetVendorOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		orderIDs := db.Model(&models.OrderItem{}).Select("order_id").Where("vendor_id = ?", vendorID)

		var orders []models.Order
		if err := db.
			Where("id IN (?)", orderIDs).
			Preload("User").
			Preload("Items", "vendor_id = ?", vendorID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
	}
}

// GET /vendor/orders/:id
func GetVendorOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items", "vendor_id = ?", vendorID).
			Where("id = ?", c.Param("id")).
			First(&order).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
	}
}

// PATCH /vendor/order-item-status
// Vendors may only touch their own items.
func UpdateOrderItemStatusVendor(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		vendorID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input UpdateOrderItemStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderItemStatus(input.OrderItemStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var item models.OrderItem
		if err := db.Where("id = ? AND vendor_id = ?", input.OrderItemID, vendorID).First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order item not found."})
			return
		}

		if err := db.Model(&item).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order item status updated", "orderItem": item})
	}
}

// PATCH /admin/order-item-status
func UpdateOrderItemStatusAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateOrderItemStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid input: " + err.Error()})
			return
		}

		status, err := mapOrderItemStatus(input.OrderItemStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var item models.OrderItem
		if err := db.First(&item, input.OrderItemID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order item not found."})
			return
		}

		if err := db.Model(&item).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order item status updated", "orderItem": item})
	}
}
