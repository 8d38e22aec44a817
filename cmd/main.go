package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/config"
	"github.com/lshigami/Gabarito/database"
	_ "github.com/lshigami/Gabarito/docs" // Swagger docs
	adminctrl "github.com/lshigami/Gabarito/internal/controller/admin"
	userctrl "github.com/lshigami/Gabarito/internal/controller/user"
	"github.com/lshigami/Gabarito/internal/logger"
	"github.com/lshigami/Gabarito/internal/repository"
	"github.com/lshigami/Gabarito/internal/router"
	"github.com/lshigami/Gabarito/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Gabarito Grading API
// @version 1.0
// @description Grades optically read answer sheets against answer keys and attributes them to participants owned by the calling account.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.NopLogger,

		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
		),

		fx.Provide(
			repository.NewAnswerKeyRepository,
			repository.NewParticipantRepository,
			repository.NewLeituraRepository,
		),

		fx.Provide(
			service.NewScoringService,
			service.NewReconciliationService,
			service.NewAnswerKeyService,
			service.NewParticipantService,
			service.NewLeituraService,
		),

		fx.Provide(
			adminctrl.NewAnswerKeyController,
			userctrl.NewLeituraController,
			userctrl.NewParticipantController,
		),

		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	answerKeyCtrl *adminctrl.AnswerKeyController,
	leituraCtrl *userctrl.LeituraController,
	participantCtrl *userctrl.ParticipantController,
) {
	router.RegisterRoutes(engine, cfg, router.Controllers{
		AnswerKeys:   answerKeyCtrl,
		Leituras:     leituraCtrl,
		Participants: participantCtrl,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Gabarito API server starting on port %s", cfg.Server.Port)
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
	if err := database.Migrate(db); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
