package main

import (
	"fmt"
	"log"
	"os"

	"mining-econ/internal/api/handlers"
	"mining-econ/internal/api/middleware"
	"mining-econ/internal/config"
	"mining-econ/internal/scenariostore"

	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Scenario store: config file if present, else an in-memory store.
	store := scenariostore.New("", nil)
	if cfgPath := os.Getenv("API_CONFIG"); cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", cfgPath, err)
		}
		store, err = cfg.OpenStore()
		if err != nil {
			log.Fatalf("Failed to open scenario store: %v", err)
		}
		log.Printf("Scenario store backend: %s", cfg.Store.Backend)
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	projectionHandler := handlers.NewProjectionHandler()
	matrixHandler := handlers.NewMatrixHandler()
	solverHandler := handlers.NewSolverHandler()
	scenarioHandler := handlers.NewScenarioHandler(store)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/projection", projectionHandler.RunProjection)
		api.POST("/matrix", matrixHandler.BuildMatrix)

		api.POST("/solver/required-return", solverHandler.RequiredReturn)
		api.POST("/irr", solverHandler.EvaluateIRR)

		api.GET("/scenarios", scenarioHandler.List)
		api.GET("/scenarios/:name", scenarioHandler.Get)
		api.POST("/scenarios", scenarioHandler.Save)
		api.DELETE("/scenarios/:name", scenarioHandler.Delete)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
