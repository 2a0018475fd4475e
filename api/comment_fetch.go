package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentView struct {
	model.Comment
	AuthorName string `json:"authorName"`
}

// CommentFetch lists the comments on a pet, newest first, with the
// author's username joined in.
func (a *API) CommentFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var comments []commentView

	err := a.DB.Model(model.Comment{}).
		Select("comments.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = comments.author_id").
		Where("comments.pet_id = ?", c.Param("petId")).
		Order("comments.created_at desc").
		Find(&comments).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch comments", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, comments)
}
