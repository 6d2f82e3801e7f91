package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"homequery/internal/config"
	"homequery/internal/handler"
	"homequery/internal/search"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("HomeQuery Search Orchestrator")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize search orchestration
	client := search.NewClient(cfg.Upstream.BaseURL, cfg.UpstreamTimeout())
	machine := search.NewMachine()
	executor := search.NewExecutor(machine, client, cfg.Search.DefaultLimit)

	log.Println("✅ Search orchestrator initialized")
	log.Printf("   - Query service: %s", cfg.Upstream.BaseURL)
	log.Printf("   - Default limit: %d", cfg.Search.DefaultLimit)
	log.Printf("   - Max limit: %d", cfg.Search.MaxLimit)

	// Initialize handlers
	searchHandler := handler.NewSearchHandler(executor, cfg.Search.DefaultLimit, cfg.Search.MaxLimit)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.AllowedOrigins}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "home-search-orchestrator",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/search", searchHandler.Submit)
		apiV1.GET("/state", searchHandler.State)
		apiV1.GET("/state/stream", searchHandler.StateStream) // SSE subscription
	}

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router)

	// Pre-filled query on first load, if configured
	if cfg.Search.InitialQuery != "" {
		if executor.Initialize(context.Background(), cfg.Search.InitialQuery) {
			log.Printf("🔍 Initial search submitted: %q", cfg.Search.InitialQuery)
		}
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API Documentation: http://localhost:%d/api/v1", cfg.Server.Port)
	log.Printf("🌐 Web UI: http://localhost:%d", cfg.Server.Port)

	// Graceful shutdown
	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
