package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ieltsmaster/writing-api/config"
	"github.com/ieltsmaster/writing-api/database"
	_ "github.com/ieltsmaster/writing-api/docs" // Swagger docs
	"github.com/ieltsmaster/writing-api/internal/controller"
	"github.com/ieltsmaster/writing-api/internal/logger"
	"github.com/ieltsmaster/writing-api/internal/middleware"
	"github.com/ieltsmaster/writing-api/internal/model"
	"github.com/ieltsmaster/writing-api/internal/repository"
	"github.com/ieltsmaster/writing-api/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title IELTS Writing Practice API
// @version 1.0
// @description API for IELTS writing practice: question generation, timed submissions, and AI rubric scoring.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewScoreRepository,
			repository.NewProfileRepository,
		),

		// Pipeline: completion provider and the mock/AI mode switch are
		// decided once here, from config.
		fx.Provide(
			NewCompletionService,
			NewQuestionSource,
			NewScoringService,
			service.NewQuestionService,
			service.NewSubmissionService,
			service.NewProfileService,
			service.NewAuthService,
		),

		// Controllers
		fx.Provide(
			controller.NewQuestionController,
			controller.NewSubmissionController,
			controller.NewAuthController,
			controller.NewProfileController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewCompletionService picks the configured completion provider. The mock
// path never touches this, so a missing API key only matters when the AI
// path is enabled.
func NewCompletionService(cfg *config.Config) (service.CompletionService, error) {
	if cfg.AI.Provider == "gemini" {
		return service.NewGeminiCompletionService(cfg)
	}
	return service.NewOpenAICompletionService(cfg), nil
}

func NewQuestionSource(cfg *config.Config, completion service.CompletionService) service.QuestionSource {
	if cfg.AI.UseMock {
		log.Info().Msg("USE_MOCK_AI is set: serving canned questions")
		return service.NewMockQuestionSource()
	}
	return service.NewAIQuestionSource(completion)
}

func NewScoringService(cfg *config.Config, completion service.CompletionService) service.ScoringService {
	if cfg.AI.UseMock {
		log.Info().Msg("USE_MOCK_AI is set: serving mock scores")
		return service.NewMockScoringService()
	}
	return service.NewAIScoringService(completion)
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	questionCtrl *controller.QuestionController,
	submissionCtrl *controller.SubmissionController,
	authCtrl *controller.AuthController,
	profileCtrl *controller.ProfileController,
) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")

	// Logout works with or without a session: the token is revoked at the
	// provider when present, otherwise the call is a no-op success.
	api.POST("/auth/logout", authCtrl.Logout)

	authed := api.Group("")
	authed.Use(middleware.Auth(cfg))
	{
		authed.POST("/questions", questionCtrl.GenerateQuestion)
		authed.POST("/submissions", submissionCtrl.SubmitAnswer)
		authed.GET("/results/:id", submissionCtrl.GetResult)
		authed.GET("/profile", profileCtrl.GetProfile)
		authed.PUT("/profile", profileCtrl.UpdateProfile)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("IELTS Writing API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Submission{},
		&model.Score{},
		&model.Profile{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
