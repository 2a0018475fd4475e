package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserDelete removes an account together with everything it owns.
// Admin only, and admin accounts themselves can't be deleted.
func (a *API) UserDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	targetID := c.Param("id")

	var user model.User

	if err := a.DB.Where("id = ?", targetID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.Role == model.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "Admin accounts can't be deleted",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", targetID).Delete(&model.Pet{}).Error; err != nil {
			return err
		}

		if err := tx.Where("author_id = ?", targetID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "User and associated data deleted successfully",
		"requestID": requestID,
	})
}
