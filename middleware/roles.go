package middleware

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
)

// RequireRoles rejects callers whose role is not in allowed. Must run
// after the JWT middleware so the role is already on the context.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)
		role := c.GetString("userRole")

		if !slices.Contains(allowed, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Access restricted",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
