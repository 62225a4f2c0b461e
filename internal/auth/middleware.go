package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/shop-api/internal/apperr"
)

const customerKey = "customer_id"

// Verifier resolves a raw bearer token to a customer id.
type Verifier interface {
	Verify(raw string) (int, error)
}

// Required rejects requests without a valid "Authorization: Bearer <jwt>".
func Required(v Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			_ = c.Error(apperr.Unauthorized("access token is missing"))
			c.Abort()
			return
		}
		id, err := v.Verify(strings.TrimSpace(raw))
		if err != nil {
			_ = c.Error(apperr.Unauthorized("access token is invalid or expired"))
			c.Abort()
			return
		}
		c.Set(customerKey, id)
		c.Next()
	}
}

// CustomerID returns the id stored by Required, or 0.
func CustomerID(c *gin.Context) int {
	return c.GetInt(customerKey)
}
