package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vastrakart/ecommerce-api/middleware"
)

// RazorpayOrder is the gateway's order object, returned to the client so it
// can open the checkout widget.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1/orders"
	}

	if keyID == "" || keySecret == "" {
		return "", "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// createRazorpayOrder posts an order to the gateway and returns its id.
// Amount is in minor units (paise), as the gateway expects.
func createRazorpayOrder(amount int64, currency string) (*RazorpayOrder, error) {
	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  "receipt_" + uuid.NewString(),
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr razorpayError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay error: %s", apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay response: %v", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned empty order id")
	}
	return &order, nil
}

type createOrderInput struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency"`
}

// POST /create-razorpay-order
func CreateRazorpayOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUserID(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}

		var input createOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Amount is required"})
			return
		}
		if input.Currency == "" {
			input.Currency = "INR"
		}

		order, err := createRazorpayOrder(input.Amount, input.Currency)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order created", "order": order})
	}
}
