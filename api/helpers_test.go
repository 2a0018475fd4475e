package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/db"
	"github.com/JMorenoPicon/petFinder-BackEnd/middleware"
	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/security"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/util"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type sentMail struct {
	To   string
	Code string
}

// fakeMailer records what would have been sent. Setting fail makes
// every send error, mimicking a broken SMTP relay.
type fakeMailer struct {
	verifications []sentMail
	confirmations []string
	resets        []sentMail
	fail          bool
}

func (m *fakeMailer) SendVerificationEmail(to, code string) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.verifications = append(m.verifications, sentMail{to, code})
	return nil
}

func (m *fakeMailer) SendConfirmationEmail(to string) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.confirmations = append(m.confirmations, to)
	return nil
}

func (m *fakeMailer) SendResetEmail(to, code string) error {
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	m.resets = append(m.resets, sentMail{to, code})
	return nil
}

var testDBSeq int64

func newTestAPI(t *testing.T) (*API, *fakeMailer) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	viper.Set("upload.max_size", int64(10<<20))

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(conn))

	m := &fakeMailer{}

	a := &API{
		DB:     conn,
		Router: gin.New(),
		Argon:  security.NewArgon(),
		Tokens: security.NewTokenService("test-secret", time.Hour),
		Mailer: m,
	}

	a.Router.Use(middleware.NewRequestIDMiddleware())
	a.setupRoutes()

	return a, m
}

func doJSON(t *testing.T, a *API, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))

	return out
}

// seedUser inserts a ready made account and returns it with a valid token.
func seedUser(t *testing.T, a *API, username, email, password, role string, verified bool) (model.User, string) {
	t.Helper()

	hash, err := a.Argon.GenerateFromPassword(password)
	require.NoError(t, err)

	id, err := util.NewID()
	require.NoError(t, err)

	user := model.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Verified:     verified,
	}
	require.NoError(t, a.DB.Create(&user).Error)

	token, err := a.Tokens.Issue(user.ID, user.Role)
	require.NoError(t, err)

	return user, token
}

func seedPet(t *testing.T, a *API, ownerID, name, status string) model.Pet {
	t.Helper()

	id, err := util.NewID()
	require.NoError(t, err)

	pet := model.Pet{
		ID:      id,
		Name:    name,
		Species: "dog",
		Breed:   "mixed",
		Status:  status,
		OwnerID: ownerID,
	}
	require.NoError(t, a.DB.Create(&pet).Error)

	return pet
}

func reloadUser(t *testing.T, a *API, id string) model.User {
	t.Helper()

	var user model.User
	require.NoError(t, a.DB.Where("id = ?", id).First(&user).Error)

	return user
}
