package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) PostDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	r := a.DB.
		Where("id = ?", c.Param("id")).
		Delete(&model.Post{})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete post", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Post not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Post deleted successfully",
		"requestID": requestID,
	})
}
