package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/aispectrumclubaiml/ak/config"
	"github.com/aispectrumclubaiml/ak/database"
	_ "github.com/aispectrumclubaiml/ak/docs" // Swagger docs
	adminctrl "github.com/aispectrumclubaiml/ak/internal/controller/admin"
	userctrl "github.com/aispectrumclubaiml/ak/internal/controller/user"
	"github.com/aispectrumclubaiml/ak/internal/logger"
	"github.com/aispectrumclubaiml/ak/internal/model"
	"github.com/aispectrumclubaiml/ak/internal/repository"
	"github.com/aispectrumclubaiml/ak/internal/service"
	"github.com/aispectrumclubaiml/ak/internal/session"
)

// @title AI Kshetra Prelims Quiz API
// @version 1.0
// @description Event quiz service: participants enter with a phone number, answer a randomized question subset under a time limit, and receive a score. Organizers manage quizzes and export CSV reports.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			NewSessionStore,
		),

		// Repositories
		fx.Provide(
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewSubmissionRepository,
			repository.NewFeedbackRepository,
		),

		// Services
		fx.Provide(
			service.NewVerificationClient,
			service.NewQuestionSelector,
			service.NewGradingService,
			service.NewEntryService,
			service.NewExamService,
			service.NewSubmissionService,
			service.NewFeedbackService,
			service.NewAdminQuizService,
			service.NewExportService,
		),

		// Controllers
		fx.Provide(
			userctrl.NewQuizController,
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Session-Token"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// NewSessionStore picks the exam-session backend: redis when configured,
// otherwise the in-process store.
func NewSessionStore(cfg *config.Config) session.Store {
	if cfg.Session.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Session.RedisAddr})
		log.Info().Str("addr", cfg.Session.RedisAddr).Msg("Using redis exam-session store")
		return session.NewRedisStore(client, cfg.Session.TTL)
	}
	log.Info().Msg("Using in-memory exam-session store")
	return session.NewMemoryStore(cfg.Session.TTL)
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	quizCtrl *userctrl.QuizController,
	adminQuizCtrl *adminctrl.AdminQuizController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		adminAPIGroup.GET("/quizzes", adminQuizCtrl.ListQuizzes)
		adminAPIGroup.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
		adminAPIGroup.GET("/quizzes/:quiz_id/export/submissions", adminQuizCtrl.ExportSubmissions)
		adminAPIGroup.GET("/quizzes/:quiz_id/export/answers", adminQuizCtrl.ExportAnswers)
		adminAPIGroup.GET("/quizzes/:quiz_id/export/feedback", adminQuizCtrl.ExportFeedback)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.POST("/entry", quizCtrl.Enter)
		userAPIGroup.GET("/quizzes/:quiz_id/exam", quizCtrl.StartExam)
		userAPIGroup.POST("/quizzes/:quiz_id/submit", quizCtrl.Submit)
		userAPIGroup.GET("/submissions/:submission_id", quizCtrl.GetResult)
		userAPIGroup.POST("/feedback", quizCtrl.SubmitFeedback)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz API server starting on port %s", cfg.Server.Port)
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
		&model.Quiz{},
		&model.Question{},
		&model.Submission{},
		&model.Answer{},
		&model.Feedback{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
