package api

import (
	"context"
	"net/http"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PetImageUpload stores a pet photo in the bucket under a key derived
// from the pet ID, replacing any previous photo.
func (a *API) PetImageUpload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	petID := c.Param("id")

	if a.S3 == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":     "Image storage is disabled",
			"requestID": requestID,
		})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "No file provided",
			"requestID": requestID,
		})
		return
	}

	status, f, contentType, err := validators.ImageValidator(fh)
	if err != nil {
		c.JSON(status, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}
	defer f.Close()

	key := "pets/" + petID

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := a.S3.Upload(ctx, key, contentType, f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upload pet image", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(model.Pet{}).
		Where("id = ?", petID).
		Update("image_key", key).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store pet image key", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image":     key,
		"requestID": requestID,
	})
}
