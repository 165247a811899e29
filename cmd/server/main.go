package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"escrow-service/internal/auth"
	"escrow-service/internal/cache"
	"escrow-service/internal/config"
	"escrow-service/internal/database"
	"escrow-service/internal/handler"
	"escrow-service/internal/logger"
	"escrow-service/internal/metrics"
	"escrow-service/internal/repository/postgres"
	"escrow-service/internal/service"
	"escrow-service/internal/validation"
	"escrow-service/internal/worker"

	_ "escrow-service/docs"

	"github.com/joho/godotenv"
)

// @title Escrow Service API
// @version 1.0
// @description Escrow transactions, dispute resolution and trust scoring for chat-mediated trades
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(true)
		bootLog.Fatal().Err(err).Msg("Failed to load config")
	}

	log := logger.New(cfg.Server.PrettyLogs)

	// Initialize database and cache connections
	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(initCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	rdb, err := database.NewRedis(initCtx, cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, trust snapshots will not be cached")
		rdb = nil
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	paymentMethodRepo := postgres.NewPaymentMethodRepository(dbPool)
	transactionRepo := postgres.NewTransactionRepository(dbPool)
	disputeRepo := postgres.NewDisputeRepository(dbPool)
	moderatorRepo := postgres.NewModeratorRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	feedbackRepo := postgres.NewFeedbackRepository(dbPool)
	badgeRepo := postgres.NewBadgeRepository(dbPool)
	walletRepo := postgres.NewWalletRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Services
	snapshots := cache.NewSnapshotCache(rdb, cfg.Redis.SnapshotTTL)
	trustService := service.NewTrustService(profileRepo, feedbackRepo, badgeRepo, txManager, snapshots, logger.Component(log, "trust"))
	escrowService := service.NewEscrowService(userRepo, transactionRepo, txManager, trustService, cfg.Escrow, logger.Component(log, "escrow"))
	disputeService := service.NewDisputeService(disputeRepo, moderatorRepo, transactionRepo, txManager, trustService, cfg.Worker.BatchSize, logger.Component(log, "disputes"))
	walletService := service.NewWalletService(walletRepo, txManager, logger.Component(log, "wallets"))
	userService := service.NewUserService(userRepo, txManager, trustService, logger.Component(log, "users"))
	paymentMethodService := service.NewPaymentMethodService(userRepo, paymentMethodRepo, logger.Component(log, "payment_methods"))
	expiryService := service.NewExpiryService(transactionRepo, txManager, cfg.Escrow.TransactionTimeout(), cfg.Worker.BatchSize, logger.Component(log, "expiry"))

	// Root context to be cancelled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go metrics.StartPoolStatsCollector(ctx, dbPool, 15*time.Second)

	// Workers for unpaid transaction expiry and pending dispute assignment
	workers := []*worker.PeriodicWorker{
		worker.NewExpiryWorker(expiryService, cfg.Worker.ExpiryInterval, logger.Component(log, "worker")),
		worker.NewAssignmentWorker(disputeService, cfg.Worker.AssignmentInterval, logger.Component(log, "worker")),
	}
	for _, w := range workers {
		w.Start(ctx)
		defer w.Stop()
	}

	// http handler
	h := handler.NewHandler(handler.Services{
		Escrow:         escrowService,
		Disputes:       disputeService,
		Trust:          trustService,
		Wallets:        walletService,
		Users:          userService,
		PaymentMethods: paymentMethodService,
	}, validation.New(cfg.Escrow), auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), logger.Component(log, "http"))
	router := h.SetupRoutes(cfg.RateLimit)

	// http server configuration
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Str("port", cfg.Server.Port).Bool("redis", rdb != nil).Msg("Server started")

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, starting graceful shutdown...")

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
	} else {
		log.Info().Msg("HTTP server stopped gracefully")
	}

	log.Info().Msg("Shutdown complete")
}
