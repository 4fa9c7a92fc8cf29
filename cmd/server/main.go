package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/DerickDu/ks-backend/internal/cache"
	"github.com/DerickDu/ks-backend/internal/config"
	"github.com/DerickDu/ks-backend/internal/handler"
	"github.com/DerickDu/ks-backend/internal/repository/postgres"
	"github.com/DerickDu/ks-backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	log.WithFields(log.Fields{
		"app":     cfg.App.Name,
		"version": cfg.App.Version,
	}).Info("Starting server")

	// Connect to PostgreSQL
	pool, err := pgxpool.New(context.Background(), cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	repo := postgres.New(pool, cfg.Database.Schema)

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := repo.Ping(pingCtx); err != nil {
		log.Warnf("Database not reachable at startup: %v", err)
	}
	pingCancel()

	// Initialize services
	store := cache.New(cfg.Cache.TTL)
	trees := service.NewTreeService(repo, store)
	reports := service.NewReportService(repo)

	if cfg.Cache.WarmOnStart {
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()
			if err := trees.Warm(ctx, repo, cfg.Cache.WarmWorkers); err != nil {
				log.Warnf("Cache warm-up incomplete: %v", err)
			} else {
				log.Info("Cache warm-up complete")
			}
		}()
	}

	// Initialize HTTP handlers
	treeHandler := handler.NewTreeHandler(trees)
	reportHandler := handler.NewReportHandler(reports, cfg.App.Name, cfg.App.Version)

	// Setup routes
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", reportHandler.Index)
	mux.HandleFunc("GET /health", reportHandler.Health)
	mux.HandleFunc("GET /api/entities/count", reportHandler.TotalEntities)
	mux.HandleFunc("GET /api/entities/count-by-domain", reportHandler.EntitiesByDomain)
	mux.HandleFunc("GET /api/entities/domains-tree", treeHandler.DomainsTree)
	mux.HandleFunc("GET /api/entities-tree", treeHandler.EntitiesTree)
	mux.HandleFunc("GET /api/entity-detail/entity", reportHandler.Entity)
	mux.HandleFunc("GET /api/entity-detail/entity-sources", reportHandler.EntitySources)

	// Apply middleware
	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS(cfg.Server.CORSOrigins),
		handler.Logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Infof("Server listening on %s", cfg.Server.Addr())
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Warnf("Server shutdown error: %v", err)
	}

	log.Info("Server stopped")
}
