package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secure-wallet-core/config"
	httpHandler "secure-wallet-core/internal/adapter/http/handler"
	pgStorage "secure-wallet-core/internal/adapter/storage/postgres"
	redisStorage "secure-wallet-core/internal/adapter/storage/redis"
	"secure-wallet-core/internal/core/ports"
	"secure-wallet-core/internal/service"
	"secure-wallet-core/pkg/logger"
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
		Msg("Starting Secure Wallet Core")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// Initialize repositories
	userRepo := pgStorage.NewUserRepo(pool)
	walletRepo := pgStorage.NewWalletRepo(pool)
	txRepo := pgStorage.NewTransactionRepo(pool)
	auditRepo := pgStorage.NewAuditRepo(pool)
	transactor := pgStorage.NewTransactor(pool)

	// Initialize Redis stores
	otpStore := redisStorage.NewOTPStore(rdb)
	windowStore := redisStorage.NewWindowStore(rdb)

	// Initialize core services, each with a component-tagged logger
	sigSvc := service.NewHMACSignatureEngine()
	auditSvc := service.NewAuditRecorder(auditRepo, logger.Component(log, "audit"))
	monitorSvc := service.NewWindowSecurityMonitor(windowStore, auditSvc, service.MonitorConfig{
		Window:                      cfg.Security.Window,
		MaxRequestsPerSubject:       cfg.Security.MaxRequestsPerSubject,
		MaxRequestsPerIP:            cfg.Security.MaxRequestsPerIP,
		BruteForceThreshold:         cfg.Security.BruteForceThreshold,
		DistributedIPThreshold:      cfg.Security.DistributedIPThreshold,
		EnumerationSubjectThreshold: cfg.Security.EnumerationSubjectThreshold,
	}, logger.Component(log, "security"))
	otpSvc := service.NewOTPLifecycleService(otpStore, monitorSvc, sigSvc, auditSvc, service.OTPConfig{
		Length:      cfg.OTP.Length,
		TTL:         cfg.OTP.TTL,
		MaxAttempts: cfg.OTP.MaxAttempts,
	}, logger.Component(log, "otp"))
	ledgerSvc := service.NewLedgerService(userRepo, walletRepo, txRepo, auditSvc, logger.Component(log, "ledger"))
	walletSvc := service.NewWalletOperationService(
		walletRepo,
		txRepo,
		ledgerSvc,
		sigSvc,
		otpSvc,
		auditSvc,
		transactor,
		cfg.Ledger.MaxRetries,
		logger.Component(log, "wallet"),
	)

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc:      walletSvc,
		OTPSvc:         otpSvc,
		LedgerSvc:      ledgerSvc,
		AuditSvc:       auditSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
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

	log.Info().Msg("Server exited")
}
