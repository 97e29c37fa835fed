package main

import (
	"fmt"
	"log"

	"github.com/steelcheck/backend/config"
	httpDelivery "github.com/steelcheck/backend/internal/delivery/http"
	"github.com/steelcheck/backend/internal/infrastructure/cache"
	"github.com/steelcheck/backend/internal/infrastructure/pdfext"
	"github.com/steelcheck/backend/internal/usecase"
	"github.com/steelcheck/backend/pkg/env"
	"github.com/steelcheck/backend/pkg/logging"
)

func main() {
	// Load .env before anything reads the environment
	env.LoadEnv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	debug := cfg.Server.Environment == "development"
	logging.InitLogger(debug)

	logging.Log.Infof("Starting SteelCheck Backend v1.0.0")
	logging.Log.Infof("Environment: %s", cfg.Server.Environment)
	logging.Log.Infof("Port: %s", cfg.Server.Port)
	logging.Log.Infof("Upload limits: %d MB per file, %d files per side",
		cfg.Upload.MaxFileSizeMB, cfg.Upload.MaxFilesPerSide)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	logging.Log.Infof("Extraction cache TTL: %s", cfg.Extract.CacheTTL)

	extractor := pdfext.NewExtractor()

	// Enable verbose parser output in development environment
	parserDebug := cfg.Parser.DebugLogging || debug

	// Initialize usecase layer
	reviewService := usecase.NewReviewService(
		extractor,
		memoryCache,
		usecase.ReviewServiceConfig{
			CacheTTL: cfg.Extract.CacheTTL,
			Parser: usecase.ParserConfig{
				BareAngleSuffix:    cfg.Parser.BareAngleSuffix,
				EnableDebugLogging: parserDebug,
			},
		},
	)

	logging.Log.Infof("Parser: bare angle suffix=%s, debug=%v",
		cfg.Parser.BareAngleSuffix, parserDebug)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(reviewService, cfg.Upload)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logging.Log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logging.Log.Fatalf("Failed to start server: %v", err)
	}
}
