package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "auth_user_id"
	userRoleKey = "auth_user_role"
	emailKey    = "auth_user_email"
)

// RequireAuth verifies the bearer token and stores its claims on the context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing bearer token",
			})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["userId"].(string); ok {
				c.Set(userIDKey, v)
			}
			if v, ok := claims["role"].(string); ok {
				c.Set(userRoleKey, v)
			}
			if v, ok := claims["email"].(string); ok {
				c.Set(emailKey, v)
			}
		}
		c.Next()
	}
}

func AuthUserID(c *gin.Context) string    { return c.GetString(userIDKey) }
func AuthUserRole(c *gin.Context) string  { return c.GetString(userRoleKey) }
func AuthUserEmail(c *gin.Context) string { return c.GetString(emailKey) }
