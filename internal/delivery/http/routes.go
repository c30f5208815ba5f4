package http

import (
	"github.com/gin-gonic/gin"

	"github.com/renalplate/backend/config"
)

// SetupRouter creates and configures the Gin router.
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		foods := v1.Group("/foods")
		{
			foods.POST("/search", handler.SearchFoods)
			foods.GET("/:fdcId", handler.GetFood)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", handler.CreateSession)
			sessions.GET("/:id/log", handler.GetLog)
			sessions.POST("/:id/log", handler.AddToLog)
			sessions.DELETE("/:id/log", handler.ClearLog)
			sessions.GET("/:id/summary", handler.GetSummary)
			sessions.GET("/:id/export", handler.ExportLog)
		}

		v1.GET("/limits", handler.GetLimits)
	}

	return router
}
