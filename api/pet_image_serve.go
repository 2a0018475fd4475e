package api

import (
	"errors"
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PetImageServe redirects to the pet's photo on the CDN.
func (a *API) PetImageServe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	petID := c.Param("id")

	var imageKey string

	err := a.DB.
		Model(model.Pet{}).
		Where("id = ?", petID).
		Select("image_key").
		First(&imageKey).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Pet not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up pet image", zap.String("id", petID), zap.Error(err))
		return
	}

	if imageKey == "" {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
			"error":     "Pet has no image",
			"requestID": requestID,
		})
		return
	}

	c.Redirect(http.StatusFound, viper.GetString("aws.cdn_url")+"/"+imageKey)
}
