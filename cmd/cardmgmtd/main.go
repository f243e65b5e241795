package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/princechakusa/Card-management-system/config"
	"github.com/princechakusa/Card-management-system/internal/api"
	"github.com/princechakusa/Card-management-system/internal/db"
	"github.com/princechakusa/Card-management-system/internal/persist"
	"github.com/princechakusa/Card-management-system/internal/seed"
	"github.com/princechakusa/Card-management-system/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "card-management ", log.LstdFlags)

	// Optional .env for CONFIG_PATH / DATABASE_DSN overrides.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		logger.Fatalf("failed to initialize database: %v", err)
	}
	logger.Println("database initialized successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	adapter := persist.NewGormAdapter(gormDB)
	snapshot, recovered, err := adapter.Load(ctx)
	if err != nil {
		logger.Fatalf("failed to load store: %v", err)
	}
	if recovered {
		logger.Println("durable slot was absent or unreadable, starting from defaults")
	}

	appStore := store.New()
	appStore.Replace(snapshot)

	// Seed sample data once, only when both collections are empty.
	if snapshot.Empty() && !cfg.Seed.DisableSamples {
		appStore.Replace(seed.Snapshot(time.Now()))
		if err := adapter.Save(ctx, appStore.Snapshot()); err != nil {
			logger.Fatalf("failed to persist sample data: %v", err)
		}
		logger.Println("seeded sample units and cards")
	}
	logger.Println("data store initialized")

	router := api.NewRouter(appStore, adapter, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
