package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Landing page widgets show the latest dozen entries
const listingLimit = 12

func (a *API) listByStatus(c *gin.Context, status string) {
	requestID := c.MustGet("requestID").(string)

	var pets []model.Pet

	err := a.DB.
		Where("status = ?", status).
		Order("created_at desc").
		Limit(listingLimit).
		Find(&pets).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch pet listings", zap.Error(err),
			zap.String("status", status), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, pets)
}

// PetAdoptable returns the pets currently up for adoption.
func (a *API) PetAdoptable(c *gin.Context) {
	a.listByStatus(c, model.PetAvailable)
}

// PetLostList returns the current lost pet notices.
func (a *API) PetLostList(c *gin.Context) {
	a.listByStatus(c, model.PetLost)
}
