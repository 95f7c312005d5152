package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vastrakart/ecommerce-api/middleware"
	"github.com/vastrakart/ecommerce-api/models"
	"gorm.io/gorm"
)

type AddToCartInput struct {
	VariantID  uint              `json:"variantId" binding:"required"`
	Quantity   int               `json:"quantity" binding:"required,min=1"`
	Attributes map[string]string `json:"attributes" binding:"required"`
}

type UpdateQuantityInput struct {
	Action string `json:"action" binding:"required,oneof=increment decrement"`
}

// apiError carries an HTTP status out of a transaction closure so the
// handler can answer with the right code after rollback.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string { return e.message }

// POST /add-to-cart
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil || len(input.Attributes) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "variantId, quantity, and attributes are required."})
			return
		}

		var item models.CartItem

		// Validation, find-or-create and increment run in one transaction so
		// two concurrent adds to the same cart cannot interleave.
		err := db.Transaction(func(tx *gorm.DB) error {
			var variant models.ProductVariant
			if err := tx.Preload("Attributes").First(&variant, input.VariantID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &apiError{http.StatusNotFound, "Variant not found."}
				}
				return err
			}

			declared := make(map[string]bool, len(variant.Attributes))
			for _, attr := range variant.Attributes {
				declared[attr.Key] = true
			}
			for key := range input.Attributes {
				if !declared[key] {
					return &apiError{http.StatusBadRequest, "Invalid attribute: " + key}
				}
			}

			// Resolve each requested key/value pair to a stored attribute row.
			// Any pair without a matching row rejects the whole add.
			resolved := make(map[uint]bool, len(input.Attributes))
			for key, value := range input.Attributes {
				found := false
				for _, attr := range variant.Attributes {
					if attr.Key == key && attr.Value == value {
						resolved[attr.ID] = true
						found = true
						break
					}
				}
				if !found {
					return &apiError{http.StatusBadRequest, "Invalid attribute values."}
				}
			}

			var cart models.Cart
			if err := tx.Where(models.Cart{UserID: userID}).FirstOrCreate(&cart).Error; err != nil {
				return err
			}

			// Match an existing line item by exact attribute set. The legacy
			// contract only required every existing link to be among the
			// resolved ids (containment), which could merge {color} into a
			// {color,size} request; exact equality is the corrected behavior.
			var candidates []models.CartItem
			if err := tx.Preload("Attributes").
				Where("cart_id = ? AND variant_id = ?", cart.ID, input.VariantID).
				Find(&candidates).Error; err != nil {
				return err
			}

			for _, candidate := range candidates {
				if sameAttributeSet(candidate.Attributes, resolved) {
					// Relative SQL update: concurrent adds to the same line
					// each apply their own delta instead of racing over a
					// quantity read at READ COMMITTED.
					if err := tx.Model(&models.CartItem{}).Where("id = ?", candidate.ID).
						Update("quantity", gorm.Expr("quantity + ?", input.Quantity)).Error; err != nil {
						return err
					}
					return tx.Preload("Attributes").First(&item, candidate.ID).Error
				}
			}

			item = models.CartItem{
				CartID:    cart.ID,
				VariantID: variant.ID,
				Quantity:  input.Quantity,
				Price:     variant.Price, // snapshot, never re-read from the catalog
			}
			for id := range resolved {
				item.Attributes = append(item.Attributes, models.CartItemAttribute{VariantAttributeID: id})
			}
			return tx.Create(&item).Error
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

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart", "item": item})
	}
}

func sameAttributeSet(links []models.CartItemAttribute, resolved map[uint]bool) bool {
	if len(links) != len(resolved) {
		return false
	}
	for _, link := range links {
		if !resolved[link.VariantAttributeID] {
			return false
		}
	}
	return true
}

type AttributePair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type CartLineItem struct {
	CartItemID  uint            `json:"cartItemId"`
	ProductName string          `json:"productName"`
	ProductSlug string          `json:"productSlug"`
	ProductID   uint            `json:"productId"`
	VariantID   uint            `json:"variantId"`
	SKU         string          `json:"sku"`
	Price       float64         `json:"price"`
	Quantity    int             `json:"quantity"`
	ItemTotal   float64         `json:"itemTotal"`
	Images      []string        `json:"images"`
	Attributes  []AttributePair `json:"attributes"`
}

// GET /get-cart
//
// A missing or empty cart is not an error: the handler answers with a zeroed
// projection and a null cart id.
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var cart models.Cart
		err := db.
			Preload("Items.Variant.Product").
			Preload("Items.Variant.Images").
			Preload("Items.Attributes.VariantAttribute").
			Where("user_id = ?", userID).
			First(&cart).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if errors.Is(err, gorm.ErrRecordNotFound) || len(cart.Items) == 0 {
			var cartID *uint
			if cart.ID != 0 {
				cartID = &cart.ID
			}
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"cartId":  cartID,
				"items":   []CartLineItem{},
				"summary": gin.H{"subtotal": 0, "totalItems": 0},
				"otherCharges": gin.H{
					"plateformfee": 0,
					"gst":          0,
					"deliveryFee":  0,
				},
				"totalAmountafterCharges": 0,
			})
			return
		}

		items := make([]CartLineItem, 0, len(cart.Items))
		for _, item := range cart.Items {
			line := CartLineItem{
				CartItemID: item.ID,
				VariantID:  item.VariantID,
				Price:      item.Price,
				Quantity:   item.Quantity,
				ItemTotal:  float64(item.Quantity) * item.Price,
				Images:     []string{},
				Attributes: []AttributePair{},
			}
			if item.Variant != nil {
				line.SKU = item.Variant.SKU
				for _, img := range item.Variant.Images {
					line.Images = append(line.Images, img.URL)
				}
				if item.Variant.Product != nil {
					line.ProductID = item.Variant.Product.ID
					line.ProductName = item.Variant.Product.Name
					line.ProductSlug = item.Variant.Product.Slug
				}
			}
			for _, link := range item.Attributes {
				if link.VariantAttribute != nil {
					line.Attributes = append(line.Attributes, AttributePair{
						Key:   link.VariantAttribute.Key,
						Value: link.VariantAttribute.Value,
					})
				}
			}
			items = append(items, line)
		}

		settings := LoadSettings(db)
		totals := ComputeTotals(cart.Items, settings)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"cartId":  cart.ID,
			"items":   items,
			"summary": gin.H{"subtotal": totals.Subtotal, "totalItems": len(items)},
			"otherCharges": gin.H{
				"plateformfee": settings.PlatformFee,
				"gst":          settings.GST,
				"deliveryFee":  settings.DeliveryFee,
			},
			"totalAmountafterCharges": totals.GrandTotal,
		})
	}
}

// PATCH /quantity-update/:id
func UpdateCartItemQuantity(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid cart item id."})
			return
		}

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid action."})
			return
		}

		var item models.CartItem
		if err := db.First(&item, uint(itemID)).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found or unauthorized."})
			return
		}

		var cart models.Cart
		if err := db.First(&cart, item.CartID).Error; err != nil || cart.UserID != userID {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart item not found or unauthorized."})
			return
		}

		delta := 1
		if input.Action == "decrement" {
			delta = -1
		}

		// The delta is applied in SQL so concurrent updates compose; a
		// quantity <= 0 is never persisted, the item goes instead.
		removed := false
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&models.CartItem{}).Where("id = ?", item.ID).
				Update("quantity", gorm.Expr("quantity + ?", delta)).Error; err != nil {
				return err
			}
			if err := tx.First(&item, item.ID).Error; err != nil {
				return err
			}
			if item.Quantity <= 0 {
				removed = true
				if err := tx.Where("cart_item_id = ?", item.ID).Delete(&models.CartItemAttribute{}).Error; err != nil {
					return err
				}
				return tx.Delete(&models.CartItem{}, item.ID).Error
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		if removed {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart."})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Quantity updated", "item": item})
	}
}

// DELETE /clear-cart
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_id = ?", userID).First(&cart).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Cart not found."})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			itemIDs := tx.Model(&models.CartItem{}).Select("id").Where("cart_id = ?", cart.ID)
			if err := tx.Where("cart_item_id IN (?)", itemIDs).Delete(&models.CartItemAttribute{}).Error; err != nil {
				return err
			}
			return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart cleared successfully."})
	}
}
