package http

import (
	"github.com/gin-gonic/gin"

	"github.com/steelcheck/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = int64(cfg.Upload.MaxFileSizeMB) << 20

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Review page and health check
	router.GET("/", handler.Index)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	maxBody := int64(cfg.Upload.MaxFileSizeMB)<<20*int64(2*cfg.Upload.MaxFilesPerSide) + 1<<20
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst))
	v1.Use(MaxBodySizeMiddleware(maxBody))
	{
		review := v1.Group("/review")
		{
			review.POST("/compare", handler.CompareDrawings)
			review.POST("/compare/csv", handler.CompareDrawingsCSV)
			review.POST("/extract", handler.ExtractMembers)
		}
	}

	return router
}
