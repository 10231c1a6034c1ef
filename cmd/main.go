package main

import (
	"context"
	"net/http"
	"time"

	"github.com/Bahri26/edumath-sub001/config"
	"github.com/Bahri26/edumath-sub001/database"
	"github.com/Bahri26/edumath-sub001/internal/controller"
	"github.com/Bahri26/edumath-sub001/internal/logger"
	"github.com/Bahri26/edumath-sub001/internal/model"
	"github.com/Bahri26/edumath-sub001/internal/repository"
	"github.com/Bahri26/edumath-sub001/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewQuestionRepository,
			repository.NewExamRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewExamBuilderService,
			service.NewSubmissionService,
			service.NewFeedbackService,
			service.NewAnalysisService,
			service.NewExamService,
		),

		fx.Provide(
			func(
				builderSvc service.ExamBuilderService,
				submissionSvc service.SubmissionService,
				analysisSvc service.AnalysisService,
				examSvc service.ExamService,
				cfg *config.Config,
			) *controller.ExamController {
				return controller.NewExamController(builderSvc, submissionSvc, analysisSvc, examSvc, cfg.JWTSecret)
			},
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
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	return r
}

func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	examCtrl *controller.ExamController,
) {
	examCtrl.RegisterRoutes(router)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam pipeline server starting on port %s", cfg.Server.Port)
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
		&model.Exam{},
		&model.ExamQuestion{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
