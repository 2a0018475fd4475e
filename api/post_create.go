package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type postBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (a *API) PostCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data postBody
	if err := c.ShouldBind(&data); err != nil || data.Title == "" || data.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Title and content required",
			"requestID": requestID,
		})
		return
	}

	postID, err := util.NewID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate post ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	post := model.Post{
		ID:       postID,
		Title:    data.Title,
		Content:  data.Content,
		AuthorID: userID,
	}

	if err := a.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create post", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, post)
}
