package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PetFetchBulk returns all pet listings, newest first.
func (a *API) PetFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var pets []model.Pet

	err := a.DB.
		Order("created_at desc").
		Find(&pets).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pets", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, pets)
}

func (a *API) PetFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var pet model.Pet

	err := a.DB.
		Where("id = ?", c.Param("id")).
		First(&pet).
		Error
	if err != nil {
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

	c.JSON(http.StatusOK, pet)
}
