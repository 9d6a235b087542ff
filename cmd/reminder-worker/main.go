package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/avdmi/salon-booking-service/internal/config"
	"github.com/avdmi/salon-booking-service/internal/infra/redislock"
	bookingRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/booking"
	mailerClient "github.com/avdmi/salon-booking-service/internal/integrations/mailer"
	notificationsService "github.com/avdmi/salon-booking-service/internal/service/notifications"
	reminderSweepUC "github.com/avdmi/salon-booking-service/internal/usecase/run_reminder_sweep"
	"github.com/avdmi/salon-booking-service/pkg/logger"
)

// Ключ блокировки в Redis: одновременно работает только один свип,
// даже если воркер запущен в несколько экземпляров.
const sweepLockKey = "lock:reminder-sweep"

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting reminder-worker...")

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis для распределенной блокировки
	redisClient, err := redislock.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis (addr=%s)", cfg.Redis.Addr)

	locker := redislock.NewLocker(
		redisClient,
		sweepLockKey,
		time.Duration(cfg.Reminder.LockTTLSeconds)*time.Second,
	)

	// Инициализируем зависимости свипа
	mailer := mailerClient.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.APIKey,
		cfg.Mailer.Sender,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	notifier := notificationsService.NewService(mailer, cfg.Mailer.Enabled, log)
	bookingRepository := bookingRepo.NewRepository(db)

	sweep := reminderSweepUC.NewUseCase(bookingRepository, notifier, log)

	interval := time.Duration(cfg.Reminder.IntervalSeconds) * time.Second
	log.Info("Reminder sweep configured: interval=%s, lock_ttl=%ds",
		interval, cfg.Reminder.LockTTLSeconds)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Обрабатываем сигналы завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("Shutdown signal received, stopping worker...")
		cancel()
	}()

	// Первый проход сразу при старте, затем по тикеру
	runSweep(ctx, sweep, locker, log)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Reminder worker stopped gracefully")
			return
		case <-ticker.C:
			runSweep(ctx, sweep, locker, log)
		}
	}
}

// runSweep выполняет один проход рассылки под распределенной блокировкой
func runSweep(ctx context.Context, sweep *reminderSweepUC.UseCase, locker *redislock.Locker, log *logger.Logger) {
	err := locker.WithLock(ctx, func(lockCtx context.Context) error {
		_, err := sweep.Execute(lockCtx)
		return err
	})

	if err != nil {
		if errors.Is(err, redislock.ErrLockNotAcquired) {
			// Свип уже выполняет другой экземпляр воркера
			log.Info("Reminder sweep skipped: lock held by another instance")
			return
		}
		log.Error("Reminder sweep failed: %v", err)
	}
}
