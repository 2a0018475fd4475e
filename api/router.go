// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"github.com/JMorenoPicon/petFinder-BackEnd/db"
	"github.com/JMorenoPicon/petFinder-BackEnd/internal/mail"
	"github.com/JMorenoPicon/petFinder-BackEnd/middleware"
	"github.com/JMorenoPicon/petFinder-BackEnd/model"
	"github.com/JMorenoPicon/petFinder-BackEnd/pkg/security"
	"github.com/JMorenoPicon/petFinder-BackEnd/storage"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB     *gorm.DB
	Router *gin.Engine
	Argon  *security.ArgonHash
	Tokens *security.TokenService
	Mailer mail.Mailer
	S3     *storage.S3Client
}

func NewRouter() (*API, error) {
	a := &API{
		Argon: security.NewArgon(),
		Tokens: security.NewTokenService(
			viper.GetString("jwt.secret"),
			security.TokenTTL,
		),
		Mailer: mail.NewSMTP(
			viper.GetString("mail.host"),
			viper.GetInt("mail.port"),
			viper.GetString("mail.sender"),
			viper.GetString("mail.password"),
		),
	}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = conn

	if viper.GetBool("storage.enabled") {
		s3, err := storage.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}
		a.S3 = s3
	}

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true
	router.MaxMultipartMemory = 5 << 20

	a.setupRoutes()

	return a, nil
}

// setupRoutes registers every endpoint. Split from NewRouter so that
// tests can register the same routes against their own dependencies.
func (a *API) setupRoutes() {
	jwt := middleware.NewJWTMiddleware(a.Tokens)
	anyUser := middleware.RequireRoles(model.RoleUser, model.RoleAdmin)
	adminOnly := middleware.RequireRoles(model.RoleAdmin)
	ownsPet := middleware.RequireOwnership(a.DB, model.Pet{}, "owner_id")
	ownsPost := middleware.RequireOwnership(a.DB, model.Post{}, "author_id")
	maxUploadSize := viper.GetInt64("upload.max_size")

	// GET / -> Used by the hosting platform's health check
	a.Router.GET("/", a.Health)

	main := a.Router.Group("/api/v1")
	{
		// HEAD /api/v1/heartbeat	-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/v1/validate	-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)
	}

	auth := main.Group("/auth", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/v1/auth/forgot-password	-> Sends a password reset code
		auth.POST("/forgot-password", a.ForgotPassword)

		// POST /api/v1/auth/reset-password	-> Consumes a reset code and sets a new password
		auth.POST("/reset-password", a.ResetPassword)

		// POST /api/v1/auth/refresh		-> Exchanges a valid token for a fresh one
		auth.POST("/refresh", jwt, a.TokenRefresh)
	}

	users := main.Group("/users", middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/v1/users/register		-> Registers a new user
		users.POST("/register", a.UserRegister)

		// POST /api/v1/users/verify		-> Consumes an email verification code
		users.POST("/verify", a.UserVerify)

		// POST /api/v1/users/login		-> Logs in a user and returns a JWT token
		users.POST("/login", a.UserLogin)

		// GET /api/v1/users			-> Lists all users (admin)
		users.GET("", jwt, adminOnly, a.UserList)

		// GET /api/v1/users/me			-> Returns the caller's profile
		users.GET("/me", jwt, anyUser, a.UserProfile)

		// PUT /api/v1/users/me			-> Updates the caller's profile
		users.PUT("/me", jwt, anyUser, a.UserUpdate)

		// GET /api/v1/users/:id		-> Returns a user by ID (admin)
		users.GET("/:id", jwt, adminOnly, a.UserFetch)

		// DELETE /api/v1/users/:id		-> Deletes a user and their data (admin)
		users.DELETE("/:id", jwt, adminOnly, a.UserDelete)

		// POST /api/v1/users/email-change	-> Starts an email change
		users.POST("/email-change", jwt, anyUser, a.RequestEmailChange)

		// POST /api/v1/users/email-change/confirm -> Confirms it with the mailed code
		users.POST("/email-change/confirm", jwt, anyUser, a.ConfirmEmailChange)

		// POST /api/v1/users/email-change/verify  -> One-shot unauthenticated variant
		users.POST("/email-change/verify", a.VerifyEmailChange)
	}

	pets := main.Group("/pets")
	{
		// GET /api/v1/pets			-> Lists all pets
		pets.GET("", a.PetFetchBulk)

		// GET /api/v1/pets/adoptable		-> Latest pets up for adoption
		pets.GET("/adoptable", cacheFor(30), a.PetAdoptable)

		// GET /api/v1/pets/lost		-> Latest lost pet notices
		pets.GET("/lost", cacheFor(30), a.PetLostList)

		// GET /api/v1/pets/:id			-> Returns a single pet
		pets.GET("/:id", a.PetFetch)

		// POST /api/v1/pets			-> Creates a pet listing
		pets.POST("", jwt, anyUser, middleware.BodySizeLimiter(1<<20), a.PetCreate)

		// PUT /api/v1/pets/:id			-> Updates a pet (owner or admin)
		pets.PUT("/:id", jwt, anyUser, ownsPet, middleware.BodySizeLimiter(1<<20), a.PetUpdate)

		// DELETE /api/v1/pets/:id		-> Deletes a pet (owner or admin)
		pets.DELETE("/:id", jwt, anyUser, ownsPet, a.PetDelete)

		// GET /api/v1/pets/:id/image		-> Redirects to the pet's photo on the CDN
		pets.GET("/:id/image", a.PetImageServe)

		// POST /api/v1/pets/:id/image		-> Uploads a pet photo (owner or admin)
		pets.POST("/:id/image", jwt, anyUser, ownsPet, middleware.BodySizeLimiter(maxUploadSize), a.PetImageUpload)
	}

	comments := main.Group("/comments", jwt, anyUser, middleware.BodySizeLimiter(1<<20))
	{
		// GET /api/v1/comments/:petId		-> Lists comments on a pet
		comments.GET("/:petId", a.CommentFetch)

		// POST /api/v1/comments/:petId		-> Comments on a pet
		comments.POST("/:petId", a.CommentCreate)
	}

	forum := main.Group("/forum")
	{
		// GET /api/v1/forum			-> Lists forum posts
		forum.GET("", a.PostFetchBulk)

		// GET /api/v1/forum/:id		-> Returns a single post
		forum.GET("/:id", a.PostFetch)

		// POST /api/v1/forum			-> Creates a post
		forum.POST("", jwt, anyUser, middleware.BodySizeLimiter(1<<20), a.PostCreate)

		// PUT /api/v1/forum/:id		-> Updates a post (author or admin)
		forum.PUT("/:id", jwt, anyUser, ownsPost, middleware.BodySizeLimiter(1<<20), a.PostUpdate)

		// DELETE /api/v1/forum/:id		-> Deletes a post (author or admin)
		forum.DELETE("/:id", jwt, anyUser, ownsPost, a.PostDelete)
	}

	reports := main.Group("/lost-found", jwt, anyUser, middleware.BodySizeLimiter(1<<20))
	{
		// POST /api/v1/lost-found		-> Files a lost/found report
		reports.POST("", a.ReportCreate)

		// GET /api/v1/lost-found		-> Lists reports
		reports.GET("", a.ReportFetchBulk)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
