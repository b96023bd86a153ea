// Package main is the entry point for the Moneyboard API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/moneyboard/backend/config"
	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/application/usecase/budget"
	"github.com/moneyboard/backend/internal/application/usecase/dashboard"
	"github.com/moneyboard/backend/internal/application/usecase/recurring"
	"github.com/moneyboard/backend/internal/application/usecase/settings"
	"github.com/moneyboard/backend/internal/application/usecase/transaction"
	"github.com/moneyboard/backend/internal/infra/db"
	"github.com/moneyboard/backend/internal/infra/server/router"
	"github.com/moneyboard/backend/internal/integration/adapters"
	"github.com/moneyboard/backend/internal/integration/email"
	"github.com/moneyboard/backend/internal/integration/entrypoint/controller"
	"github.com/moneyboard/backend/internal/integration/entrypoint/middleware"
	"github.com/moneyboard/backend/internal/integration/persistence"
	"github.com/moneyboard/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Moneyboard API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.Migrate(
		&model.TransactionModel{},
		&model.RecurringTransactionModel{},
		&model.UserSettingsModel{},
		&model.EmailQueueModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis backs the rate limiter; the API runs without it if unreachable.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Repositories
	transactionRepo := persistence.NewTransactionRepository(database.Gorm())
	recurringRepo := persistence.NewRecurringRepository(database.Gorm())
	settingsRepo := persistence.NewSettingsRepository(database.Gorm())
	emailQueueRepo := persistence.NewEmailQueueRepository(database.Gorm())

	// Ledger sessions and budget registry
	sessions := ledger.NewManager(transactionRepo, recurringRepo)
	budgetRegistry := budget.NewRegistry()

	// Services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	// Use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(sessions)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(sessions)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(sessions)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(sessions)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(sessions)

	overviewUseCase := dashboard.NewGetOverviewUseCase(sessions)
	analyticsUseCase := dashboard.NewGetAnalyticsUseCase(sessions)

	listRecurringUseCase := recurring.NewListRecurringUseCase(sessions)
	createRecurringUseCase := recurring.NewCreateRecurringUseCase(sessions)
	toggleRecurringUseCase := recurring.NewToggleRecurringUseCase(sessions)

	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRegistry, sessions, emailQueueRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRegistry)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRegistry)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRegistry)

	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)

	// Controllers
	healthController := controller.NewHealthController(database.Ping)
	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		exportTransactionsUseCase,
	)
	dashboardController := controller.NewDashboardController(overviewUseCase, analyticsUseCase)
	recurringController := controller.NewRecurringController(
		listRecurringUseCase,
		createRecurringUseCase,
		toggleRecurringUseCase,
	)
	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)
	settingsController := controller.NewSettingsController(getSettingsUseCase, updateSettingsUseCase)

	// Middleware
	rateLimiter := middleware.NewRateLimiter(redisClient)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Email worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		worker := email.NewWorker(emailQueueRepo, sender, email.WorkerConfig{
			PollInterval: cfg.Email.PollInterval,
			BatchSize:    cfg.Email.BatchSize,
		})
		go worker.Start(workerCtx)
	} else {
		slog.Info("Email worker disabled")
	}

	// Router and HTTP server
	r := router.NewRouter(
		healthController,
		transactionController,
		dashboardController,
		recurringController,
		budgetController,
		settingsController,
		rateLimiter,
		authMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("Failed to close redis client", "error", err)
	}

	slog.Info("Server exited properly")
}
