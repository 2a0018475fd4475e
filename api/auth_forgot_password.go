package api

import (
	"net/http"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/security"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type forgotPasswordBody struct {
	Email string `json:"email"`
}

// ForgotPassword stores a reset code on the account and mails it. The
// response does not reveal whether the email is registered, matching
// the login failure policy.
func (a *API) ForgotPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data forgotPasswordBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	uniformResponse := gin.H{
		"message":   "If that email is registered, a reset code has been sent",
		"requestID": requestID,
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, uniformResponse)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	code, err := security.GenerateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate reset code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"reset_password_code":    code,
			"reset_password_expires": time.Now().Add(security.ResetCodeTTL),
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store reset code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The stored code stays valid on mail failure so a retry can reuse it
	if err := a.Mailer.SendResetEmail(user.Email, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send reset email",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send reset email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, uniformResponse)
}
