package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Gabarito/config"
	adminctrl "github.com/lshigami/Gabarito/internal/controller/admin"
	userctrl "github.com/lshigami/Gabarito/internal/controller/user"
	"github.com/lshigami/Gabarito/internal/middleware"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controllers groups every HTTP controller mounted under /api/v1.
type Controllers struct {
	AnswerKeys   *adminctrl.AnswerKeyController
	Leituras     *userctrl.LeituraController
	Participants *userctrl.ParticipantController
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		requestID, _ := param.Keys[middleware.RequestIDKey].(string)
		log.Info().
			Str("request_id", requestID).
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, ctrls Controllers) {
	api := r.Group("/api/v1", middleware.AccountAuth(cfg.Auth.JWTSecret))
	{
		leituras := api.Group("/leituras")
		leituras.POST("", ctrls.Leituras.IngestLeitura)
		leituras.POST("/batch", ctrls.Leituras.IngestLeituraBatch)
		leituras.GET("", ctrls.Leituras.GetLeituras)
		leituras.GET("/stats", ctrls.Leituras.GetStats)
		leituras.GET("/:leitura_id", ctrls.Leituras.GetLeitura)
		leituras.PATCH("/:leitura_id", ctrls.Leituras.CorrectLeitura)
		leituras.DELETE("/:leitura_id", ctrls.Leituras.DeleteLeitura)

		participants := api.Group("/participants")
		participants.POST("", ctrls.Participants.RegisterParticipant)
		participants.GET("", ctrls.Participants.GetOwnParticipants)
		participants.GET("/:participant_id", ctrls.Participants.GetParticipant)

		answerKeys := api.Group("/answer-keys")
		answerKeys.GET("", ctrls.AnswerKeys.GetAllAnswerKeys)
		answerKeys.GET("/:answer_key_id", ctrls.AnswerKeys.GetAnswerKey)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		answerKeys := admin.Group("/answer-keys")
		answerKeys.POST("", ctrls.AnswerKeys.CreateAnswerKey)
		answerKeys.PUT("/:answer_key_id", ctrls.AnswerKeys.UpsertAnswerKey)
	}
}
