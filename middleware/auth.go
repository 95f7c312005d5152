package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

func parseToken(c *gin.Context) (jwt.MapClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, errors.New("no token provided")
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// requireRole verifies the Bearer token and checks the role claim before
// putting user_id and role on the context.
func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := parseToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err.Error()})
			c.Abort()
			return
		}

		claimRole, _ := claims["role"].(string)
		if claimRole != role {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": role + " access only"})
			c.Abort()
			return
		}

		idFloat, ok := claims["user_id"].(float64)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token claims"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, uint(idFloat))
		c.Set(CtxRole, claimRole)
		c.Next()
	}
}

func UserAuth() gin.HandlerFunc   { return requireRole("USER") }
func AdminAuth() gin.HandlerFunc  { return requireRole("ADMIN") }
func VendorAuth() gin.HandlerFunc { return requireRole("VENDOR") }

// CurrentUserID returns the authenticated subject set by the auth middleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, exists := c.Get(CtxUserID)
	if !exists {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}
