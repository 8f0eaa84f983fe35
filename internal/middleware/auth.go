package middleware

import (
	"net/http"
	"strings"

	"biteengine/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is a Gin middleware for JWT authentication of API requests.
// It checks for the presence and validity of a token in the Authorization
// header and injects the caller's identity into the request context.
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			c.Abort()
			return
		}

		// Extract token (format: "Bearer <token>")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		// Identity is passed to handlers explicitly through the context,
		// never read from process-global state
		c.Set("identity", service.Identity{
			ID:     claims.UserID,
			Name:   claims.Name,
			Email:  claims.Email,
			Avatar: claims.Avatar,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// GetIdentity extracts the identity set by AuthMiddleware
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	value, exists := c.Get("identity")
	if !exists {
		return service.Identity{}, false
	}
	identity, ok := value.(service.Identity)
	return identity, ok
}

// RequireRole checks if the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "identity not found"})
			c.Abort()
			return
		}

		if identity.Role != requiredRole {
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "insufficient permissions",
				"required": requiredRole,
				"current":  identity.Role,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin is a convenience function for requiring admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole("admin")
}
