package api

import (
	"net/http"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type resetPasswordBody struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword consumes a reset code and sets the new password in one
// conditional update. Wrong email, wrong code and an expired code are
// indistinguishable from the outside.
func (a *API) ResetPassword(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resetPasswordBody
	if err := c.ShouldBind(&data); err != nil || data.Email == "" || data.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Email, code and new password required",
			"requestID": requestID,
		})
		return
	}

	if err := validators.PasswordValidator(data.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	hash, err := a.Argon.GenerateFromPassword(data.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	r := a.DB.Model(model.User{}).
		Where("email = ? AND reset_password_code = ? AND reset_password_expires > ?",
			data.Email, data.Code, time.Now()).
		Updates(map[string]any{
			"password_hash":          hash,
			"reset_password_code":    nil,
			"reset_password_expires": nil,
		})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to consume reset code", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Code invalid or expired",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Password reset successfully",
		"requestID": requestID,
	})
}
