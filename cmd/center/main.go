package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/thanhdat-89/qlhv-sub000/internal/app"
	"github.com/thanhdat-89/qlhv-sub000/internal/config"
	"github.com/thanhdat-89/qlhv-sub000/internal/controller"
	"github.com/thanhdat-89/qlhv-sub000/internal/repository"
	"github.com/thanhdat-89/qlhv-sub000/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Info("Starting tuition center service",
		zap.String("environment", cfg.Environment))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsPath, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	// Repositories
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	extraRepo := repository.NewExtraSessionRepository(pool)
	holidayRepo := repository.NewHolidayRepository(pool)
	promoRepo := repository.NewPromotionRepository(pool)
	paymentRepo := repository.NewPaymentRepository(pool)

	// Services
	billingService := service.NewBillingService(
		studentRepo, classRepo, extraRepo, paymentRepo, holidayRepo, promoRepo, logger)
	enrollmentService := service.NewEnrollmentService(studentRepo, logger)

	// Background maintenance
	scheduler := app.NewScheduler(enrollmentService, logger)
	scheduler.Start(ctx)
	defer scheduler.Stop()

	if cfg.TelegramToken == "" {
		logger.Warn("TELEGRAM_TOKEN not set, reporting bot disabled")
		<-ctx.Done()
		return
	}

	botInstance, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(botInstance, billingService, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Fatal("Failed to register handlers", zap.Error(err))
	}

	if err := botController.Start(ctx); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
