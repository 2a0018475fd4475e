package middleware

import (
	"net/http"
	"strings"

	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/security"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewJWTMiddleware is the authentication gate. It pulls the bearer token
// out of the Authorization header, validates it and attaches the caller's
// identity and role to the request context. It never touches the database.
func NewJWTMiddleware(tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No token provided",
				"requestID": requestID,
			})
			return
		}

		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Malformed Authorization header",
				"requestID": requestID,
			})
			return
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Token invalid or expired",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}
