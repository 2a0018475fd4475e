package api

import (
	"net/http"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reportBody struct {
	PetID       string `json:"petId"`
	ReportType  string `json:"reportType"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// ReportCreate files a lost/found report. The reporter is always the
// authenticated caller, never taken from the body.
func (a *API) ReportCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data reportBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if data.PetID == "" || data.Description == "" || data.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Pet ID, description and location required",
			"requestID": requestID,
		})
		return
	}

	if data.ReportType != model.ReportLost && data.ReportType != model.ReportFound {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Report type must be 'lost' or 'found'",
			"requestID": requestID,
		})
		return
	}

	var petExists bool

	r := a.DB.Model(model.Pet{}).
		Select("count(*) > 0").
		Where("id = ?", data.PetID).
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

	reportID, err := util.NewID()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate report ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	report := model.LostFoundReport{
		ID:          reportID,
		PetID:       data.PetID,
		ReportType:  data.ReportType,
		Description: data.Description,
		Location:    data.Location,
		ReporterID:  userID,
		ReportDate:  time.Now(),
	}

	if err := a.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create report", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, report)
}
