package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PostUpdate edits a forum post. Authorship was already checked by the
// ownership middleware.
func (a *API) PostUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	postID := c.Param("id")

	var data postBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	updates := map[string]any{}

	if data.Title != "" {
		updates["title"] = data.Title
	}
	if data.Content != "" {
		updates["content"] = data.Content
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.Model(model.Post{}).
		Where("id = ?", postID).
		Updates(updates)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update post", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Post not found",
			"requestID": requestID,
		})
		return
	}

	var post model.Post

	if err := a.DB.Where("id = ?", postID).First(&post).Error; err != nil {
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

		zap.L().Error("Failed to reload post", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, post)
}
