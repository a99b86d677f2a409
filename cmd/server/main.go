package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"nextfund-ledger/internal/config"
	"nextfund-ledger/internal/database"
	"nextfund-ledger/internal/gateway"
	"nextfund-ledger/internal/handler"
	"nextfund-ledger/internal/ledger"
	"nextfund-ledger/internal/logger"
	"nextfund-ledger/internal/notify"
	"nextfund-ledger/internal/policy"
	"nextfund-ledger/internal/repository/postgres"
	"nextfund-ledger/internal/service"
	"nextfund-ledger/internal/worker"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	_ "nextfund-ledger/docs"
)

// @title NextFund Ledger API
// @version 1.0
// @description Reward, deposit and withdrawal ledger for the NextFund app
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional, real environment wins
	envErr := godotenv.Load()

	// Setup logger
	log := logger.New(true)

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if !cfg.Log.Pretty {
		log = logger.New(false)
	}
	if envErr != nil {
		log.Debug().Err(envErr).Msg("No .env file loaded")
	}

	// Initialize database connection
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbPool, err := database.NewPool(dbCtx, cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(dbCtx, dbPool); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
	}

	rdb, err := database.NewRedisClient(dbCtx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// Repositories
	accountRepo := postgres.NewAccountRepository(dbPool)
	ledgerRepo := postgres.NewLedgerRepository(dbPool)
	idempotency := postgres.NewIdempotencyStore(dbPool)
	videoRepo := postgres.NewVideoRepository(dbPool)
	paymentRepo := postgres.NewPaymentRepository(dbPool)
	subRepo := postgres.NewSubscriptionRepository(dbPool)
	jobRunRepo := postgres.NewJobRunRepository(dbPool)

	// Transaction manager used by services
	txManager := postgres.NewTransactionManager(dbPool)

	// Domain components
	writer := ledger.NewWriter(accountRepo, ledgerRepo, idempotency, log)
	rules := policy.New(cfg.Policy)
	gatewayClient := gateway.NewHTTPClient(cfg.Gateway)

	// Notifications: enqueue after commit, deliver through redis pub/sub
	queueClient := asynq.NewClient(database.AsynqRedisOpt(cfg.Redis))
	defer queueClient.Close()

	notifier := notify.NewAsynqNotifier(queueClient, log)
	subscriber := notify.NewRedisSubscriber(rdb, log)
	delivery := notify.NewDeliveryHandler(rdb, log)

	// Services
	services := handler.Services{
		Reward:     service.NewRewardService(accountRepo, videoRepo, subRepo, writer, rules, notifier, txManager, log),
		Payment:    service.NewPaymentService(accountRepo, paymentRepo, idempotency, writer, gatewayClient, rules, notifier, txManager, cfg.Gateway.WebhookURL, log),
		Withdrawal: service.NewWithdrawalService(accountRepo, paymentRepo, subRepo, writer, rules, notifier, txManager, log),
		Vip:        service.NewVipService(accountRepo, subRepo, writer, notifier, txManager, log),
		Account:    service.NewAccountService(accountRepo, ledgerRepo, paymentRepo, subRepo, rules, log),
		Job:        service.NewJobService(accountRepo, subRepo, jobRunRepo, txManager, log),
	}

	// Root context canceled on SIGINT / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Worker delivering queued notifications
	notificationWorker := worker.NewNotificationWorker(cfg.Redis, cfg.Worker.NotificationConcurrency, delivery, log)
	if err := notificationWorker.Start(); err != nil {
		log.Fatal().Err(err).Msg("failed to start notification worker")
	}
	defer notificationWorker.Stop()

	// Worker for the daily limit reset, unless an external scheduler owns it
	if cfg.Worker.DailyResetEnabled {
		loc, err := cfg.Worker.Location()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid daily reset timezone")
		}
		resetWorker := worker.NewDailyResetWorker(services.Job, loc, log)
		resetWorker.Start(ctx)
		defer resetWorker.Stop()
	}

	// http handler
	h := handler.NewHandler(services, subscriber, cfg.Auth, log)
	router := h.SetupRoutes()

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

	log.Info().Str("port", cfg.Server.Port).Msg("Server started")

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
