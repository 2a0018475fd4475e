package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReportFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var reports []model.LostFoundReport

	err := a.DB.
		Order("created_at desc").
		Find(&reports).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch reports", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, reports)
}
