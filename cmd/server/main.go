package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"craft-economy/config"
	httpHandler "craft-economy/internal/adapter/http/handler"
	fileStorage "craft-economy/internal/adapter/storage/file"
	pgStorage "craft-economy/internal/adapter/storage/postgres"
	redisStorage "craft-economy/internal/adapter/storage/redis"
	"craft-economy/internal/core/domain"
	"craft-economy/internal/core/ports"
	"craft-economy/internal/service"
	"craft-economy/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("backend", cfg.Storage.Backend).
		Msg("Starting Craft Economy")

	ctx := context.Background()

	// Initialize storage backend
	var (
		balanceStore   ports.BalanceStore
		catalogStore   ports.CatalogStore
		marketStore    ports.MarketStore
		healthCheckers []ports.HealthChecker
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Storage.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		if err := pgStorage.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to create schema")
		}
		log.Info().Msg("PostgreSQL connected")

		balanceStore = pgStorage.NewBalanceStore(pool)
		catalogStore = pgStorage.NewCatalogStore(pool)
		marketStore = pgStorage.NewMarketStore(pool, log)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))

	case "file":
		if err := fileStorage.EnsureDataDir(cfg.Storage.DataDir); err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Storage.DataDir).Msg("Failed to create data directory")
		}
		balanceStore = fileStorage.NewBalanceStore(cfg.Storage.DataDir, log)
		catalogStore = fileStorage.NewCatalogStore(cfg.Storage.DataDir, log)
		marketStore = fileStorage.NewMarketStore(cfg.Storage.DataDir, log)

	default:
		log.Fatal().Str("backend", cfg.Storage.Backend).Msg("Unknown storage backend")
	}

	// Optional Redis leaderboard
	var leaderboard ports.LeaderboardStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()
		log.Info().Msg("Redis connected")

		leaderboard = redisStorage.NewLeaderboard(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	// Initialize core services
	ledgerSvc, err := service.NewLedgerService(ctx, balanceStore, leaderboard, cfg.Economy.StartBalance, cfg.Economy.MaxBalance, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load balance ledger")
	}

	catalogSvc, err := service.NewCatalogService(ctx, catalogStore, domain.DefaultRegistry(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load price catalog")
	}

	marketSvc, err := service.NewMarketService(ctx, marketStore, ledgerSvc, cfg.Economy.TaxBps, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load market state")
	}

	// No direct inventory host over HTTP; shop purchases are escrowed as deliveries.
	shopSvc := service.NewShopService(catalogSvc, ledgerSvc, marketSvc, nil, log)

	keySvc := service.NewArgon2KeyService()
	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, cfg.Auth.JWTIssuer)
	authSvc := service.NewAuthService(keySvc, tokenSvc, cfg.Auth.AdminKeyHash, log)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		Catalog:        catalogSvc,
		Market:         marketSvc,
		Shop:           shopSvc,
		AuthSvc:        authSvc,
		TokenSvc:       tokenSvc,
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Persist full in-memory state before exit.
	if err := ledgerSvc.Flush(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Ledger flush failed")
	}
	if err := marketSvc.Flush(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Market flush failed")
	}

	log.Info().Msg("Server exited")
}
