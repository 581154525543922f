package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-newsroom/internal/application"
	"github.com/oksasatya/go-newsroom/pkg/response"
)

const claimsKey = "claims"

// Authenticate resolves the caller from the bearer header or auth cookie and stores the
// claims in the Gin context. Anonymous requests pass through untouched.
func Authenticate(identity *application.IdentityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := identity.Authenticate(c.Request); ok {
			c.Set(claimsKey, claims)
			c.Set("userID", claims.UserID)
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth() gin.HandlerFunc {
	return requireIdentity(false)
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin() gin.HandlerFunc {
	return requireIdentity(true)
}

func requireIdentity(adminOnly bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := application.RequireIdentity(ClaimsFrom(c), adminOnly)
		switch {
		case err == nil:
			c.Next()
		case errors.Is(err, application.ErrUnauthenticated):
			response.Fail(c, http.StatusUnauthorized, err.Error(), nil)
		default:
			response.Fail(c, http.StatusForbidden, "admin role required", nil)
		}
	}
}

// ClaimsFrom returns the authenticated caller, or nil.
func ClaimsFrom(c *gin.Context) *application.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*application.Claims)
	return claims
}
