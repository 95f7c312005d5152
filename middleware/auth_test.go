package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret"

func signToken(t *testing.T, userID uint, role, secret string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func authRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", guard, func(c *gin.Context) {
		id, ok := CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "userId": id})
	})
	return r
}

func getProtected(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUserAuthValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := authRouter(UserAuth())

	w := getProtected(r, signToken(t, 42, "USER", testSecret))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":42`)
}

func TestAuthMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := authRouter(UserAuth())

	w := getProtected(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := authRouter(UserAuth())

	w := getProtected(r, signToken(t, 42, "USER", "other_secret"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	claims := jwt.MapClaims{
		"user_id": float64(42),
		"role":    "USER",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	r := authRouter(UserAuth())
	w := getProtected(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMismatchIsForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := authRouter(AdminAuth())

	w := getProtected(r, signToken(t, 42, "USER", testSecret))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN access only")
}

func TestVendorAuthAcceptsVendorRole(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	r := authRouter(VendorAuth())

	w := getProtected(r, signToken(t, 7, "VENDOR", testSecret))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestValidateAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "super-secret")
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/internal/ping", ValidateAPIKey, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
	req.Header.Set("X-API-KEY", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/internal/ping", nil)
	req.Header.Set("X-API-KEY", "super-secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
