package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/config"
	"github.com/ndthang/quizhub/database"
	_ "github.com/ndthang/quizhub/docs" // Swagger docs - auto-generated
	"github.com/ndthang/quizhub/internal/auth"
	adminctrl "github.com/ndthang/quizhub/internal/controller/admin"
	userctrl "github.com/ndthang/quizhub/internal/controller/user"
	"github.com/ndthang/quizhub/internal/logger"
	"github.com/ndthang/quizhub/internal/middleware"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/ndthang/quizhub/internal/repository"
	"github.com/ndthang/quizhub/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title QuizHub API
// @version 1.0
// @description Quiz-taking API: registration, quiz attempts with scoring, attempt history and a leaderboard. Admins manage quiz content.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			auth.NewTokenService,
			middleware.NewAuthMiddleware,
		),

		// Repositories layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewAttemptRepository,
		),

		// Services layer
		fx.Provide(
			service.NewAuthService,
			service.NewQuizService,
			service.NewAttemptService,
			service.NewLeaderboardService,
		),

		// API controllers layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewQuizController,
			userctrl.NewAttemptController,
			userctrl.NewLeaderboardController,
			adminctrl.NewAdminQuizController,
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

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authMW *middleware.AuthMiddleware,
	authCtrl *userctrl.AuthController,
	quizCtrl *userctrl.QuizController,
	attemptCtrl *userctrl.AttemptController,
	leaderboardCtrl *userctrl.LeaderboardController,
	adminQuizCtrl *adminctrl.AdminQuizController,
) {
	api := router.Group("/api/v1")

	// Auth routes (no session required)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", authCtrl.Signup)
		authGroup.POST("/login", authCtrl.Login)
		authGroup.POST("/logout", authCtrl.Logout)
		authGroup.GET("/me", authCtrl.Me)
	}

	// User routes (session required)
	userGroup := api.Group("")
	userGroup.Use(authMW.RequireAuth())
	{
		userGroup.GET("/quizzes", quizCtrl.ListQuizzes)
		userGroup.GET("/quizzes/:quiz_id/start", quizCtrl.StartQuiz)

		userGroup.POST("/attempts", attemptCtrl.SubmitAttempt)
		userGroup.GET("/attempts/history", attemptCtrl.GetHistory)

		userGroup.GET("/leaderboard", leaderboardCtrl.GetLeaderboard)
	}

	// Admin routes (session + admin role required)
	adminGroup := api.Group("/admin")
	adminGroup.Use(authMW.RequireAuth(), authMW.AdminOnly())
	{
		adminGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		adminGroup.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
		adminGroup.PUT("/quizzes/:quiz_id", adminQuizCtrl.UpdateQuiz)
		adminGroup.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("QuizHub API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
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
		&model.User{},
		&model.Quiz{},
		&model.Question{},
		&model.Attempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
