package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soulfinder/auth"
	"soulfinder/models"
)

// Gin context keys set by the auth gate.
const (
	ContextEmail = "email"
	ContextName  = "name"
)

// RequireAuth extracts the bearer token and verifies it. A missing header or
// token fails with 401 before any verification; a verifier rejection fails
// with 403. On success the decoded email is attached to the context.
func RequireAuth(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Set(ContextEmail, claims.Email)
		c.Set(ContextName, claims.Name)
		c.Next()
	}
}

// RoleLookup resolves the account behind an authenticated email.
type RoleLookup interface {
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// RequireAdmin allows only accounts whose role is admin. Must run after
// RequireAuth. The rejection carries the actual role for diagnostics.
func RequireAdmin(users RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(ContextEmail)

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}
		if user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Admin access required",
				"role":    user.Role,
			})
			return
		}
		c.Next()
	}
}
