package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PetUpdate edits a listing. Ownership was already checked by the
// middleware; the update itself never touches owner_id.
func (a *API) PetUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	petID := c.Param("id")

	var data petBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	updates := map[string]any{}

	if data.Name != "" {
		updates["name"] = data.Name
	}
	if data.Species != "" {
		updates["species"] = data.Species
	}
	if data.Breed != "" {
		updates["breed"] = data.Breed
	}
	if !data.BirthDate.IsZero() {
		updates["birth_date"] = data.BirthDate
	}
	if data.Description != "" {
		updates["description"] = data.Description
	}
	if data.City != "" {
		updates["city"] = data.City
	}
	if data.LastSeen != "" {
		updates["last_seen"] = data.LastSeen
	}
	if data.LocationLat != nil {
		updates["location_lat"] = *data.LocationLat
	}
	if data.LocationLng != nil {
		updates["location_lng"] = *data.LocationLng
	}
	if data.FoundAt != nil {
		updates["found_at"] = *data.FoundAt
	}

	if data.Status != "" {
		if err := validators.PetStatusValidator(data.Status); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
		updates["status"] = data.Status
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Nothing to update",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.Model(model.Pet{}).
		Where("id = ?", petID).
		Updates(updates)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update pet", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Pet not found",
			"requestID": requestID,
		})
		return
	}

	var pet model.Pet

	if err := a.DB.Where("id = ?", petID).First(&pet).Error; err != nil {
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

		zap.L().Error("Failed to reload pet", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, pet)
}
