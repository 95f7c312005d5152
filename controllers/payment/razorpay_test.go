package paymentControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRazorpayOrderAgainstStubGateway(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "key_id", user)
		require.Equal(t, "key_secret", pass)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, 249900.0, payload["amount"])
		assert.Equal(t, "INR", payload["currency"])
		assert.NotEmpty(t, payload["receipt"])

		json.NewEncoder(w).Encode(RazorpayOrder{
			ID: "order_stub", Amount: 249900, Currency: "INR", Status: "created",
		})
	}))
	defer gateway.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")
	t.Setenv("RAZORPAY_API_URL", gateway.URL)

	order, err := createRazorpayOrder(249900, "INR")
	require.NoError(t, err)
	assert.Equal(t, "order_stub", order.ID)
	assert.Equal(t, int64(249900), order.Amount)
}

func TestCreateRazorpayOrderGatewayError(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(gin.H{
			"error": gin.H{"code": "BAD_REQUEST_ERROR", "description": "amount exceeds maximum"},
		})
	}))
	defer gateway.Close()

	t.Setenv("RAZORPAY_KEY_ID", "key_id")
	t.Setenv("RAZORPAY_KEY_SECRET", "key_secret")
	t.Setenv("RAZORPAY_API_URL", gateway.URL)

	_, err := createRazorpayOrder(1, "INR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount exceeds maximum")
}

func TestCreateRazorpayOrderMissingConfig(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, _, _, err := getRazorpayConfig()
	require.Error(t, err)
}
