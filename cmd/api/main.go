package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"options-builder/internal/api/handlers"
	"options-builder/internal/api/middleware"
	"options-builder/internal/logging"
	"options-builder/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log := logging.NewLogger()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join("data", "strategies.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to create database directory")
	}

	st, err := store.NewSQLiteStore(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("failed to open strategy store")
	}
	defer st.Close()
	log.Info().Str("path", dbPath).Msg("strategy store ready")

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Comma-separated origins; empty means allow all (local development).
	var origins []string
	if v := os.Getenv("FRONTEND_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}
	router.Use(middleware.CORS(origins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	payoffHandler := handlers.NewPayoffHandler(log)
	strategyHandler := handlers.NewStrategyHandler(st, log)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "healthy",
				"service": "options-builder",
			})
		})

		api.POST("/payoff/calculate", payoffHandler.Calculate)
		api.GET("/payoff/strategies", payoffHandler.ListStrategyTypes)

		api.POST("/strategies", strategyHandler.Create)
		api.GET("/strategies", strategyHandler.List)
		api.GET("/strategies/:id", strategyHandler.Get)
		api.PUT("/strategies/:id", strategyHandler.Update)
		api.DELETE("/strategies/:id", strategyHandler.Delete)
	}

	// Serve the built frontend if it exists (SPA routing falls back to
	// index.html for non-API paths).
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}
	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Info().Str("dir", staticDir).Msg("serving static files")
	}

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
