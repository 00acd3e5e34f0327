package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wallet-settlement/config"
	"wallet-settlement/internal/adapter/chain/tron"
	"wallet-settlement/internal/adapter/gateway/zarinpal"
	httpHandler "wallet-settlement/internal/adapter/http/handler"
	pgStorage "wallet-settlement/internal/adapter/storage/postgres"
	redisStorage "wallet-settlement/internal/adapter/storage/redis"
	"wallet-settlement/internal/core/ports"
	"wallet-settlement/internal/service"
	"wallet-settlement/pkg/logger"
	"wallet-settlement/pkg/telemetry"
)

var version = "dev"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("version", version).
		Msg("Starting wallet settlement service")

	ctx := context.Background()

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, version)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Repositories
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	cartRepo := pgStorage.NewCartRepo(pool)
	invoiceRepo := pgStorage.NewInvoiceRepo()
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Upstream clients
	gateway := zarinpal.NewClient(cfg.Gateway)
	chain := tron.NewClient(cfg.Chain)

	// Core services
	encSvc, err := service.NewAESEncryptionService(cfg.Crypto.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption service")
	}
	sigSvc := service.NewHMACSignatureService()
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	auditSvc := service.NewAuditService(auditRepo, log)
	notifier := service.NewNotificationService(cfg.Notify, sigSvc, log)
	guard := service.NewGuard(transactor, redisStorage.NewLockStore(rdb), cfg.Redis.LockTTL, log)

	// Workflows
	walletSvc := service.NewWalletService(walletRepo, txRepo, tron.NewKeyGenerator(), encSvc, guard, log)
	depositSvc := service.NewDepositService(
		walletRepo,
		txRepo,
		gateway,
		chain,
		notifier,
		guard,
		cfg.Gateway.CallbackURLDeposit,
		log,
	)
	settlementSvc := service.NewSettlementService(
		walletRepo,
		txRepo,
		cartRepo,
		invoiceRepo,
		gateway,
		chain,
		notifier,
		guard,
		cfg.Gateway.CallbackURLCart,
		log,
	)

	var sweeper *service.Sweeper
	if cfg.Sweeper.Enabled {
		sweeper, err = service.NewSweeper(txRepo, cfg.Sweeper, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create pending sweeper")
		}
		if err := sweeper.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start pending sweeper")
		}
	}

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		DepositSvc:     depositSvc,
		SettlementSvc:  settlementSvc,
		TokenSvc:       tokenSvc,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{pgStorage.NewHealthCheck(pool), redisStorage.NewHealthCheck(rdb)},
		AuditSvc:       auditSvc,
		Mode:           cfg.Server.Mode,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if sweeper != nil {
		if err := sweeper.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Pending sweeper shutdown failed")
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Tracer shutdown failed")
	}

	log.Info().Msg("Server exited")
}
