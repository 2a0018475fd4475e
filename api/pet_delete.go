package api

import (
	"context"
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PetDelete removes a listing and its comments. Ownership was already
// checked by the middleware.
func (a *API) PetDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	petID := c.Param("id")

	var pet model.Pet

	if err := a.DB.Where("id = ?", petID).First(&pet).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Pet not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pet", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", petID).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&pet).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete pet", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Best effort, an orphaned image costs storage but nothing else
	if a.S3 != nil && pet.ImageKey != "" {
		if err := a.S3.Delete(context.TODO(), pet.ImageKey); err != nil {
			zap.L().Warn("Failed to delete pet image", zap.Error(err), zap.String("requestID", requestID))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Pet deleted successfully",
		"requestID": requestID,
	})
}
