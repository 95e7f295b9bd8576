package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/user/moodlog/api"
	dbfs "github.com/user/moodlog/db"
	"github.com/user/moodlog/internal/analysis"
	"github.com/user/moodlog/internal/config"
	"github.com/user/moodlog/internal/db"
	"github.com/user/moodlog/pkg/ollama"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func main() {
	// a missing .env is fine; env vars may come from the environment itself
	_ = godotenv.Load()

	var configPath = flag.String("config", "", "Path to config YAML file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	api.SetLogger(appLogger)
	ollama.SetLogger(appLogger)

	log.Printf("Starting moodlog server version %s (built at %s)", version, buildTime)

	ctx := context.Background()

	// Open database connection and apply pending migrations
	database, err := db.New(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Migrate(ctx, database, dbfs.Migrations); err != nil {
		log.Fatalf("Failed to migrate DB: %v", err)
	}

	client, err := ollama.NewDefaultClient(cfg.Ollama)
	if err != nil {
		log.Fatalf("Failed to create model client: %v", err)
	}
	engine := analysis.NewEngine(client, cfg.Engine)

	handler := api.SetupRoutes(cfg, version, buildTime, database, engine)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.APITimeout,
		WriteTimeout: cfg.APITimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	client.Close()

	// Close database connection
	if err := database.Close(); err != nil {
		log.Printf("Error closing DB: %v", err)
	}

	log.Println("Server exited")
}
