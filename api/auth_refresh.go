package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenRefresh exchanges a still-valid bearer token for a new one with
// a fresh expiry. The JWT middleware already vetted the token, the
// refresh revalidates it anyway because issuing is cheap.
func (a *API) TokenRefresh(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	raw, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")

	token, err := a.Tokens.Refresh(raw)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Token invalid or expired",
			"requestID": requestID,
		})

		zap.L().Debug("Refused token refresh", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"requestID": requestID,
	})
}
