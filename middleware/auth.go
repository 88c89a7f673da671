package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pizza-shop/models"
	"pizza-shop/utils"
)

func abortUnauthorized(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, resp)
}

// AuthMiddleware checks the Bearer token and stashes the claims in the
// request context for the handlers behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required", nil)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			abortUnauthorized(c, "Invalid authorization header format", nil)
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", err)
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware, which sets user_role.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_role") != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Access denied. Admin role required",
			})
			return
		}
		c.Next()
	}
}
