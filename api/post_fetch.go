package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type postView struct {
	model.Post
	AuthorName string `json:"authorName"`
}

func (a *API) PostFetchBulk(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var posts []postView

	err := a.DB.Model(model.Post{}).
		Select("posts.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = posts.author_id").
		Order("posts.created_at desc").
		Find(&posts).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch posts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (a *API) PostFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var post postView

	err := a.DB.Model(model.Post{}).
		Select("posts.*, users.username AS author_name").
		Joins("LEFT JOIN users ON users.id = posts.author_id").
		Where("posts.id = ?", c.Param("id")).
		First(&post).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Post not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch post", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, post)
}
