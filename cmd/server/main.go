package main

import (
	"context"
	"log"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/alexgaoth/boba-bi/pkg/agent"
	"github.com/alexgaoth/boba-bi/pkg/auth"
	"github.com/alexgaoth/boba-bi/pkg/config"
	"github.com/alexgaoth/boba-bi/pkg/database"
	"github.com/alexgaoth/boba-bi/pkg/datagen"
	"github.com/alexgaoth/boba-bi/pkg/handlers"
	"github.com/alexgaoth/boba-bi/pkg/pipeline"
)

func main() {
	// Load .env if it exists. Try root and parent directories for flexibility.
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.FromEnv()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	store := &database.Store{DB: db}

	// An empty store gets a synthetic dataset so the API is demoable out of
	// the box; production deployments load real POS data instead.
	if os.Getenv("SKIP_SEED") == "" {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		seedCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		err := store.Seed(seedCtx,
			datagen.GenerateTransactions(8, time.Now(), r),
			datagen.GenerateEmployees(10, r))
		cancel()
		if err != nil {
			log.Fatalf("could not seed database: %v", err)
		}
	}

	orchestrator := pipeline.New(cfg, pipeline.Deps{
		Transactions: store,
		Employees:    store,
		Forecast:     forecastProvider(cfg, logger),
		Commentary:   commentaryGenerator(logger),
		Sink:         store,
		Logger:       logger,
	})

	h := &handlers.Handler{
		DB:           db,
		Cfg:          cfg,
		Orchestrator: orchestrator,
		Transactions: store,
		Employees:    store,
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   "Boba BI API",
			"status":    "running",
			"version":   "1.0.0",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.POST("/admin/login", h.Login)

	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/keys", h.GenerateKey)
		admin.GET("/keys", h.ListKeys)
		admin.PUT("/keys/:id", h.UpdateKeyLimit)
		admin.DELETE("/keys/:id", h.RevokeKey)
		admin.GET("/usage/:id", h.GetUsage)
	}

	api := r.Group("/api")
	api.Use(h.APIKeyMiddleware())
	{
		api.POST("/schedule", h.Schedule)
		api.POST("/schedule/csv", h.ScheduleCSV)
		api.GET("/employees", h.ListEmployees)
		api.GET("/traffic", h.TrafficAnalysis)
		api.GET("/stats", h.Stats)
		api.GET("/validate", h.ValidateData)
		api.GET("/usage", h.GetMyUsage)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("could not run server: %v", err)
	}
}

// forecastProvider prefers the LLM-backed weather agent and falls back to the
// deterministic static signal when no API key is configured.
func forecastProvider(cfg config.Config, logger *slog.Logger) pipeline.ForecastProvider {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		logger.Info("ANTHROPIC_API_KEY not set, using static forecast provider")
		return agent.StaticProvider{}
	}
	client, err := agent.NewAnthropicClient(agent.Config{APIKey: apiKey, Model: os.Getenv("ANTHROPIC_MODEL")})
	if err != nil {
		logger.Warn("could not build anthropic client, using static forecast provider", "error", err)
		return agent.StaticProvider{}
	}
	return agent.NewWeatherAgent(client, cfg.ForecastRounds, nil, logger)
}

// commentaryGenerator returns nil when no API key is configured; the pipeline
// then emits empty commentary strings.
func commentaryGenerator(logger *slog.Logger) pipeline.CommentaryGenerator {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}
	client, err := agent.NewAnthropicClient(agent.Config{APIKey: apiKey, Model: os.Getenv("ANTHROPIC_MODEL")})
	if err != nil {
		logger.Warn("could not build anthropic client for commentary", "error", err)
		return nil
	}
	return agent.NewAnalyst(client)
}
