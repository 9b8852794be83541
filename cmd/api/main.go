package main

import (
	"fmt"
	"log"
	"os"

	"leaseback-model/internal/api/handlers"
	"leaseback-model/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Log working directory and the preset path for debugging
	if wd, err := os.Getwd(); err == nil {
		log.Printf("Working directory: %s", wd)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	computeHandler := handlers.NewComputeHandler()
	sensitivityHandler := handlers.NewSensitivityHandler()
	transactionHandler := handlers.NewTransactionHandler()
	metricsHandler := handlers.NewMetricsHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Diagnostic endpoint to check the preset directory
	router.GET("/debug/preset-dir", func(c *gin.Context) {
		wd, _ := os.Getwd()
		presetDir := transactionHandler.GetPresetDir()
		info, statErr := os.Stat(presetDir)

		var entries []string
		if dirEntries, err := os.ReadDir(presetDir); err == nil {
			for _, e := range dirEntries {
				entries = append(entries, e.Name())
			}
		}

		c.JSON(200, gin.H{
			"working_directory": wd,
			"preset_dir":        presetDir,
			"preset_dir_exists": statErr == nil,
			"preset_dir_is_dir": info != nil && info.IsDir(),
			"entries":           entries,
			"entry_count":       len(entries),
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/compute", computeHandler.RunCompute)
		api.POST("/compute/compare", computeHandler.CompareTransactions)

		api.GET("/sensitivity", sensitivityHandler.RunSweep)

		api.GET("/transactions", transactionHandler.ListTransactions)
		api.GET("/metrics", metricsHandler.ListMetrics)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		// Serve static assets
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
