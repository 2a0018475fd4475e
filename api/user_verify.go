package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type verifyBody struct {
	Email string `json:"email"`
	Code  string `json:"verificationCode"`
}

// UserVerify consumes an email verification code. The match and the
// clear happen in one conditional update so two racing requests can't
// both succeed with the same code.
func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" || data.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email and verification code required",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.Model(model.User{}).
		Where("email = ? AND verification_code = ?", data.Email, data.Code).
		Updates(map[string]any{
			"verified":          true,
			"verification_code": nil,
		})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to consume verification code", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		var exists bool

		err := a.DB.Model(model.User{}).
			Select("count(*) > 0").
			Where("email = ?", data.Email).
			Find(&exists).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check if user exists", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if !exists {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Incorrect verification code",
			"requestID": requestID,
		})
		return
	}

	if err := a.Mailer.SendConfirmationEmail(data.Email); err != nil {
		// The account is verified either way, the welcome mail is best effort
		zap.L().Warn("Failed to send confirmation email", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Registration completed successfully",
		"requestID": requestID,
	})
}
