package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/nft-bridge/internal/adapter"
	"github.com/feral-file/nft-bridge/internal/api/server"
	"github.com/feral-file/nft-bridge/internal/bridge"
	"github.com/feral-file/nft-bridge/internal/config"
	"github.com/feral-file/nft-bridge/internal/logger"
	"github.com/feral-file/nft-bridge/internal/origin"
	"github.com/feral-file/nft-bridge/internal/rollup"
	"github.com/feral-file/nft-bridge/internal/store"
	"github.com/feral-file/nft-bridge/internal/verifier"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting NFT Bridge API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Run schema migrations
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database schema", zap.Error(err))
	}

	// Initialize store
	dataStore := store.NewPGStore(db)

	// Initialize adapters and chain clients
	clock := adapter.NewClock()
	originClient := origin.NewLCDClient(
		cfg.Origin.LCDURL,
		adapter.NewHTTPClient(cfg.Origin.HTTPTimeout),
		clock,
	)
	rollupClient := rollup.NewGatewayClient(
		cfg.Rollup.GatewayURL,
		cfg.Rollup.AccountAddress,
		adapter.NewHTTPClient(cfg.Rollup.HTTPTimeout),
		clock,
	)

	// Worker pool for per-token checks
	pool := pond.NewPool(
		cfg.Worker.WorkerPoolSize,
		pond.WithQueueSize(cfg.Worker.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	// Create bridge services
	bridgeVerifier := bridge.NewVerifier(
		verifier.NewSecp256k1Verifier(),
		originClient,
		rollupClient,
		dataStore,
		cfg.Origin.AdminWallet,
		pool,
	)
	customers := bridge.NewCustomerService(dataStore)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		FrontendOrigin: cfg.Server.FrontendOrigin,
	}

	// Create and start server
	srv := server.New(serverConfig, bridgeVerifier, customers)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	// Stop accepting requests before stopping the pool: in-flight bridge
	// requests still submit token checks to it.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	pool.StopAndWait()

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
