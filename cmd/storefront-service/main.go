package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	httpserver "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := log.New(os.Stdout, "[storefront-service] ", log.LstdFlags|log.Lshortfile)

	store := mustOpenStore(cfg, logger)

	checker := auth.NewMockChecker(cfg.LoginDelay)
	authManager := auth.NewManager(context.Background(), store, auth.StorageKey, checker, logger)

	registry := httpserver.NewRegistry(store, logger)
	catalogRepo := catalog.NewMemoryRepository(catalog.SampleProducts())

	var publisher events.Publisher = events.NewNoopPublisher(logger)
	if cfg.RabbitURL != "" {
		rabbitConn := events.MustDialRabbit(cfg.RabbitURL)
		defer rabbitConn.Close()

		rabbitPublisher, err := events.NewRabbitPublisher(rabbitConn)
		if err != nil {
			logger.Fatalf("failed to create cart events publisher: %v", err)
		}
		defer rabbitPublisher.Close()
		publisher = rabbitPublisher
	}

	mux := httpserver.NewRouter(registry, catalogRepo, authManager, publisher, cfg.CORSAllowOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("storefront-service listening on :%s (store backend: %s)", cfg.Port, cfg.StoreBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errCh:
		logger.Fatalf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown error: %v", err)
	}
}

func mustOpenStore(cfg config.Config, logger *log.Logger) storage.Store {
	switch cfg.StoreBackend {
	case "memory":
		return storage.NewMemoryStore()

	case "file":
		store, err := storage.NewFileStore(cfg.StoreDir)
		if err != nil {
			logger.Fatalf("open file store: %v", err)
		}
		return store

	case "postgres":
		if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
			logger.Fatalf("run migrations: %v", err)
		}
		database := db.MustOpen(cfg.DatabaseDSN)
		return storage.NewPostgresStore(database)

	case "redis":
		store, err := storage.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Fatalf("open redis store: %v", err)
		}
		return store

	default:
		logger.Fatalf("unknown store backend %q", cfg.StoreBackend)
		return nil
	}
}
