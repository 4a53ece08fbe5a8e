package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fleet-roi/internal/api/handlers"
	"fleet-roi/internal/api/middleware"
	"fleet-roi/internal/api/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	resultStore := buildResultStore()

	scenarioHandler := handlers.NewScenarioHandler()
	projectionHandler := handlers.NewProjectionHandler(resultStore, scenarioHandler.GetScenarioDir())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/projection", projectionHandler.RunProjection)
		api.GET("/projection/:id/ledger", projectionHandler.GetLedger)
		api.POST("/projection/compare", projectionHandler.CompareProjections)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
	}

	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildResultStore picks the result store backend. With REDIS_ADDR set and
// reachable, stored ledgers survive restarts and are shared between
// instances; otherwise an in-process TTL map is used.
func buildResultStore() store.ResultStore {
	ttl := time.Hour
	if v := os.Getenv("RESULT_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			ttl = parsed
		} else {
			log.Printf("Ignoring invalid RESULT_TTL %q: %v", v, err)
		}
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rs := store.NewRedisStore(addr, ttl)
		if err := rs.Ping(); err != nil {
			log.Printf("Redis at %s unreachable (%v), falling back to memory store", addr, err)
		} else {
			log.Printf("Using Redis result store at %s", addr)
			return rs
		}
	}

	log.Printf("Using in-memory result store (ttl %s)", ttl)
	return store.NewMemoryStore(ttl)
}
