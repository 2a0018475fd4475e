package api

import (
	"net/http"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/security"
	"github.com/JMorenoPicon/petFinder-BackEnd/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type emailChangeRequestBody struct {
	NewEmail string `json:"newEmail"`
}

type emailChangeConfirmBody struct {
	Code string `json:"code"`
}

type emailChangeVerifyBody struct {
	OldEmail string `json:"oldEmail"`
	NewEmail string `json:"newEmail"`
	Code     string `json:"verificationCode"`
}

// RequestEmailChange stores the new address and a confirmation code on
// the caller's account and mails the code to the new address.
func (a *API) RequestEmailChange(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data emailChangeRequestBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.NewEmail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var taken bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ? AND id != ?", data.NewEmail, userID).
		Find(&taken)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if email is taken", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "That email is already in use",
			"requestID": requestID,
		})
		return
	}

	code, err := security.GenerateCode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate email change code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(model.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"pending_email":      data.NewEmail,
			"pending_email_code": code,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store pending email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.Mailer.SendVerificationEmail(data.NewEmail, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to send verification email",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send email change code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Code sent to the new email address",
		"requestID": requestID,
	})
}

// ConfirmEmailChange promotes the pending email to primary. Matching
// the code and clearing the pending fields is one conditional update,
// so a stale code replayed after success finds nothing to match.
func (a *API) ConfirmEmailChange(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data emailChangeConfirmBody
	if err := c.ShouldBind(&data); err != nil || data.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Code required",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.Model(model.User{}).
		Where("id = ? AND pending_email IS NOT NULL AND pending_email_code = ?", userID, data.Code).
		Updates(map[string]any{
			"email":              gorm.Expr("pending_email"),
			"pending_email":      nil,
			"pending_email_code": nil,
		})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to confirm email change", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		var row struct{ PendingEmail *string }

		err := a.DB.Model(model.User{}).
			Where("id = ?", userID).
			Select("pending_email").
			First(&row).
			Error
		if err != nil && err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to check pending email", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if row.PendingEmail == nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "No email change pending",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Incorrect code",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Email updated successfully",
		"requestID": requestID,
	})
}

// VerifyEmailChange is the unauthenticated one-shot variant: old email,
// new email and code must all match at once.
func (a *API) VerifyEmailChange(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data emailChangeVerifyBody
	if err := c.ShouldBind(&data); err != nil || data.OldEmail == "" || data.NewEmail == "" || data.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Old email, new email and code required",
			"requestID": requestID,
		})
		return
	}

	r := a.DB.Model(model.User{}).
		Where("email = ? AND pending_email = ? AND pending_email_code = ?",
			data.OldEmail, data.NewEmail, data.Code).
		Updates(map[string]any{
			"email":              data.NewEmail,
			"pending_email":      nil,
			"pending_email_code": nil,
		})
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify email change", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		var exists bool

		err := a.DB.Model(model.User{}).
			Select("count(*) > 0").
			Where("email = ?", data.OldEmail).
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
			"error":     "Incorrect code or email",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Email updated successfully",
		"requestID": requestID,
	})
}
