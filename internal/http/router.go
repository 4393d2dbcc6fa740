package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/smarthome_predictor/backend/internal/artifact"
	"github.com/smarthome_predictor/backend/internal/config"
	"github.com/smarthome_predictor/backend/internal/db"
	"github.com/smarthome_predictor/backend/internal/http/handlers"
	"github.com/smarthome_predictor/backend/internal/http/middleware"
	"github.com/smarthome_predictor/backend/internal/service"

	_ "github.com/smarthome_predictor/backend/docs"
)

func Router(cfg config.Config, artifacts *artifact.Store, history *db.Store, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	predictor := &service.Predictor{
		Artifacts:    artifacts,
		Logger:       logger,
		BatchWorkers: cfg.BatchWorkers,
	}

	h := &handlers.Handler{
		Predictor:    predictor,
		Artifacts:    artifacts,
		History:      history,
		Validator:    validator.New(),
		Logger:       logger,
		ModelPath:    cfg.ModelPath,
		BatchLimit:   cfg.BatchLimit,
		HistoryLimit: cfg.HistoryLimit,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/predict", h.Predict)
		api.POST("/batch-predict", h.BatchPredict)
		api.GET("/model-info", h.ModelInfo)
		api.GET("/zones", h.Zones)
		api.GET("/history", h.HistoryList)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/reload", h.Reload)
		admin.DELETE("/history", h.HistoryPurge)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
