package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/api"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/config"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/database"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/dataset"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/repository"
	"github.com/mdejong/Metal-Price-Dashboard-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	priceRepo := repository.NewPriceRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	// Load the price dataset into memory. Queries only ever see complete
	// snapshots; an empty database yields an empty (but initialized) dataset.
	store := dataset.NewStore()
	loader := dataset.NewLoader(priceRepo, store)
	if err := loader.Load(context.Background()); err != nil {
		log.Fatalf("Failed to load price dataset: %v", err)
	}

	// Create services
	systemService := service.NewSystemService(db)
	metalService := service.NewMetalService(store, cfg.Metrics)
	settingService := service.NewSettingService(settingRepo)
	importService := service.NewImportService(priceRepo, loader)

	// Optional scheduled dataset reload
	if cfg.Reload.Schedule != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Reload.Schedule, func() {
			if err := loader.Load(context.Background()); err != nil {
				log.Printf("Scheduled dataset reload failed: %v", err)
			}
		}); err != nil {
			log.Fatalf("Invalid reload schedule %q: %v", cfg.Reload.Schedule, err)
		}
		c.Start()
		defer c.Stop()
		log.Printf("Scheduled dataset reload: %s", cfg.Reload.Schedule)
	}

	// Create router
	router := api.NewRouter(systemService, metalService, settingService, importService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
