package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"lessonbook/internal/app"
	"lessonbook/internal/auth"
	"lessonbook/internal/config"
	"lessonbook/internal/notify"
	"lessonbook/internal/repository"
	"lessonbook/internal/server"
	"lessonbook/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting lessonbook server",
		zap.String("environment", cfg.Environment),
		zap.String("port", cfg.HTTPPort),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Уведомления включаются только при наличии токена бота.
	// Их доставка никогда не влияет на результат основных операций.
	var dispatcher *notify.Dispatcher
	if cfg.TelegramToken != "" {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken)
		if err != nil {
			logger.Warn("Failed to create telegram notifier, notifications disabled", zap.Error(err))
		} else {
			dispatcher = notify.NewDispatcher(notifier, cfg.NotifyTimeout, logger)
			defer dispatcher.Stop()
		}
	} else {
		logger.Info("TELEGRAM_TOKEN is not set, notifications disabled")
	}

	userRepo := repository.NewUserRepository(pool)
	appointmentRepo := repository.NewAppointmentRepository(pool)
	availabilityRepo := repository.NewAvailabilityRepository(pool)
	questionnaireRepo := repository.NewQuestionnaireRepository(pool)
	assignmentRepo := repository.NewIndependentAssignmentRepository(pool)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userService := service.NewUserService(userRepo, tokens, logger)
	appointmentService := service.NewAppointmentService(
		appointmentRepo, userRepo, dispatcher, cfg.BaseURL, cfg.ReopenRejected, logger)
	availabilityService := service.NewAvailabilityService(availabilityRepo, logger)
	questionnaireService := service.NewQuestionnaireService(questionnaireRepo, appointmentRepo, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, userRepo, logger)

	router := server.NewRouter(cfg.Environment, server.Handlers{
		Auth:           server.NewAuthHandler(userService),
		Appointments:   server.NewAppointmentHandler(appointmentService),
		Availabilities: server.NewAvailabilityHandler(availabilityService),
		Questionnaires: server.NewQuestionnaireHandler(questionnaireService),
		Assignments:    server.NewAssignmentHandler(assignmentService),
	}, tokens, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("Shutting down", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}
