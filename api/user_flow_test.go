package api

import (
	"net/http"
	"testing"

	"github.com/JMorenoPicon/petFinder-BackEnd/model"

	"github.com/gin-gonic/gin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	a, m := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"username": "alice",
		"email":    "alice@x.com",
		"password": "password1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	userID := decodeBody(t, w)["userID"].(string)
	user := reloadUser(t, a, userID)

	assert.False(t, user.Verified)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.NotEqual(t, "password1", user.PasswordHash)
	require.NotNil(t, user.VerificationCode)
	assert.Len(t, *user.VerificationCode, 6)

	require.Len(t, m.verifications, 1)
	assert.Equal(t, "alice@x.com", m.verifications[0].To)
	assert.Equal(t, *user.VerificationCode, m.verifications[0].Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	a, _ := newTestAPI(t)
	seedUser(t, a, "alice", "alice@x.com", "password1", model.RoleUser, true)

	w := doJSON(t, a, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"username": "alice2",
		"email":    "alice@x.com",
		"password": "password1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	a, _ := newTestAPI(t)
	seedUser(t, a, "alice", "alice@x.com", "password1", model.RoleUser, true)

	w := doJSON(t, a, http.MethodPost, "/api/v1/users/register", "", gin.H{
		"username": "alice",
		"email":    "other@x.com",
		"password": "password1",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidatesInput(t *testing.T) {
	a, _ := newTestAPI(t)

	cases := []gin.H{
		{"username": "", "email": "a@x.com", "password": "password1"},
		{"username": "alice", "email": "bad", "password": "password1"},
		{"username": "alice", "email": "a@x.com", "password": "short"},
	}

	for _, body := range cases {
		w := doJSON(t, a, http.MethodPost, "/api/v1/users/register", "", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLoginBeforeVerificationIssuesNoToken(t *testing.T) {
	a, m := newTestAPI(t)
	user, _ := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, false)

	w := doJSON(t, a, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email":    "alice@x.com",
		"password": "pw1password",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, false, body["isVerified"])
	assert.NotContains(t, body, "token")

	// A fresh code was stored and resent
	require.Len(t, m.verifications, 1)
	reloaded := reloadUser(t, a, user.ID)
	require.NotNil(t, reloaded.VerificationCode)
	assert.Equal(t, *reloaded.VerificationCode, m.verifications[0].Code)
}

func TestVerifyThenLogin(t *testing.T) {
	a, m := newTestAPI(t)

	code := "123456"
	user, _ := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, false)
	require.NoError(t, a.DB.Model(model.User{}).Where("id = ?", user.ID).
		Update("verification_code", code).Error)

	// Wrong code mutates nothing
	w := doJSON(t, a, http.MethodPost, "/api/v1/users/verify", "", gin.H{
		"email":            "alice@x.com",
		"verificationCode": "000000",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, reloadUser(t, a, user.ID).Verified)

	// Right code verifies and clears
	w = doJSON(t, a, http.MethodPost, "/api/v1/users/verify", "", gin.H{
		"email":            "alice@x.com",
		"verificationCode": code,
	})
	require.Equal(t, http.StatusOK, w.Code)

	reloaded := reloadUser(t, a, user.ID)
	assert.True(t, reloaded.Verified)
	assert.Nil(t, reloaded.VerificationCode)
	assert.Equal(t, []string{"alice@x.com"}, m.confirmations)

	// Replaying the consumed code must fail
	w = doJSON(t, a, http.MethodPost, "/api/v1/users/verify", "", gin.H{
		"email":            "alice@x.com",
		"verificationCode": code,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// And login now yields a token
	w = doJSON(t, a, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email":    "alice@x.com",
		"password": "pw1password",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["token"])
}

func TestVerifyUnknownEmail(t *testing.T) {
	a, _ := newTestAPI(t)

	w := doJSON(t, a, http.MethodPost, "/api/v1/users/verify", "", gin.H{
		"email":            "ghost@x.com",
		"verificationCode": "123456",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginFailuresAreUniform(t *testing.T) {
	a, _ := newTestAPI(t)
	seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)

	wrongPassword := doJSON(t, a, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email":    "alice@x.com",
		"password": "not-the-password",
	})
	unknownEmail := doJSON(t, a, http.MethodPost, "/api/v1/users/login", "", gin.H{
		"email":    "ghost@x.com",
		"password": "pw1password",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t,
		decodeBody(t, wrongPassword)["error"],
		decodeBody(t, unknownEmail)["error"])
}

func TestTokenRefreshEndpoint(t *testing.T) {
	a, _ := newTestAPI(t)
	_, token := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)

	w := doJSON(t, a, http.MethodPost, "/api/v1/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	refreshed := decodeBody(t, w)["token"].(string)
	claims, err := a.Tokens.Validate(refreshed)
	require.NoError(t, err)
	assert.Equal(t, model.RoleUser, claims.Role)

	w = doJSON(t, a, http.MethodPost, "/api/v1/auth/refresh", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserProfileAndAdminEndpoints(t *testing.T) {
	a, _ := newTestAPI(t)
	user, userToken := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	_, adminToken := seedUser(t, a, "root", "root@x.com", "pw1password", model.RoleAdmin, true)

	w := doJSON(t, a, http.MethodGet, "/api/v1/users/me", userToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", decodeBody(t, w)["username"])

	// Listing users is admin only
	w = doJSON(t, a, http.MethodGet, "/api/v1/users", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/users", adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/users/"+user.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, a, http.MethodGet, "/api/v1/users/nonexistent", adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserUpdateRequiresCurrentPassword(t *testing.T) {
	a, _ := newTestAPI(t)
	user, token := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)

	w := doJSON(t, a, http.MethodPut, "/api/v1/users/me", token, gin.H{
		"username": "alicia",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPut, "/api/v1/users/me", token, gin.H{
		"username":        "alicia",
		"currentPassword": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, a, http.MethodPut, "/api/v1/users/me", token, gin.H{
		"username":        "alicia",
		"password":        "newpassword1",
		"currentPassword": "pw1password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	reloaded := reloadUser(t, a, user.ID)
	assert.Equal(t, "alicia", reloaded.Username)

	ok, err := a.Argon.VerifyPasswd("newpassword1", reloaded.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUserDeleteCascades(t *testing.T) {
	a, _ := newTestAPI(t)
	user, userToken := seedUser(t, a, "alice", "alice@x.com", "pw1password", model.RoleUser, true)
	admin, adminToken := seedUser(t, a, "root", "root@x.com", "pw1password", model.RoleAdmin, true)

	pet := seedPet(t, a, user.ID, "Rex", model.PetAvailable)
	require.NoError(t, a.DB.Create(&model.Comment{
		ID: "c1", PetID: pet.ID, AuthorID: user.ID, Content: "mine",
	}).Error)

	// Non-admins can't delete anyone
	w := doJSON(t, a, http.MethodDelete, "/api/v1/users/"+admin.ID, userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Admin accounts are not deletable
	w = doJSON(t, a, http.MethodDelete, "/api/v1/users/"+admin.ID, adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/users/"+user.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var petCount, commentCount int64
	require.NoError(t, a.DB.Model(model.Pet{}).Where("owner_id = ?", user.ID).Count(&petCount).Error)
	require.NoError(t, a.DB.Model(model.Comment{}).Where("author_id = ?", user.ID).Count(&commentCount).Error)
	assert.Zero(t, petCount)
	assert.Zero(t, commentCount)

	w = doJSON(t, a, http.MethodDelete, "/api/v1/users/"+user.ID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
