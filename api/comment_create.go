package api

import (
	"net/http"
	"strings"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentBody struct {
	Content string `json:"content"`
}

func (a *API) CommentCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)
	petID := c.Param("petId")

	var data commentBody
	if err := c.ShouldBind(&data); err != nil || strings.TrimSpace(data.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Comment can't be empty",
			"requestID": requestID,
		})
		return
	}

	var petExists bool

	r := a.DB.Model(model.Pet{}).
		Select("count(*) > 0").
		Where("id = ?", petID).
		Find(&petExists)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if pet exists", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if !petExists {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Pet not found",
			"requestID": requestID,
		})
		return
	}

	commentID, err := util.NewID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate comment ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	comment := model.Comment{
		ID:       commentID,
		PetID:    petID,
		AuthorID: userID,
		Content:  strings.TrimSpace(data.Content),
	}

	if err := a.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, comment)
}
