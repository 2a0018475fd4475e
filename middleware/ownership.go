package middleware

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RequireOwnership only lets the resource's owner (or an admin) through.
// The lookup happens on every request because ownership can change
// between requests. resource is the gorm model to look up, ownerColumn
// the column holding the owning user's ID.
func RequireOwnership(d *gorm.DB, resource any, ownerColumn string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)
		userID := c.MustGet("userID").(string)
		role := c.GetString("userRole")

		// Unknown roles are rejected before we spend a query on them
		if role != model.RoleUser && role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "Access restricted",
				"requestID": requestID,
			})
			return
		}

		id := c.Param("id")
		if id == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "No ID provided",
				"requestID": requestID,
			})
			return
		}

		// Admins bypass the ownership lookup entirely. A missing
		// resource still 404s in the handler itself.
		if role == model.RoleAdmin {
			c.Next()
			return
		}

		var ownerID string

		err := d.
			Model(resource).
			Where("id = ?", id).
			Select(ownerColumn).
			First(&ownerID).
			Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
					"error":     "Resource not found",
					"requestID": requestID,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up resource owner", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if ownerID != userID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "You don't own this resource",
				"requestID": requestID,
			})
			return
		}

		c.Next()
	}
}
