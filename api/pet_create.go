package api

import (
	"net/http"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/util"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type petBody struct {
	Name        string     `json:"name"`
	Species     string     `json:"species"`
	Breed       string     `json:"breed"`
	BirthDate   time.Time  `json:"birthDate"`
	Description string     `json:"description"`
	City        string     `json:"city"`
	Status      string     `json:"status"`
	LastSeen    string     `json:"lastSeen"`
	LocationLat *float64   `json:"locationLat"`
	LocationLng *float64   `json:"locationLng"`
	FoundAt     *time.Time `json:"foundAt"`
}

func (a *API) PetCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data petBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PetValidator(data.Name, data.Species, data.Breed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Status == "" {
		data.Status = model.PetAvailable
	}

	if err := validators.PetStatusValidator(data.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	petID, err := util.NewID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate pet ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	pet := model.Pet{
		ID:          petID,
		Name:        data.Name,
		Species:     data.Species,
		Breed:       data.Breed,
		BirthDate:   data.BirthDate,
		Description: data.Description,
		City:        data.City,
		Status:      data.Status,
		OwnerID:     userID,
		LastSeen:    data.LastSeen,
		LocationLat: data.LocationLat,
		LocationLng: data.LocationLng,
		FoundAt:     data.FoundAt,
	}

	if err := a.DB.Create(&pet).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create pet", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, pet)
}
