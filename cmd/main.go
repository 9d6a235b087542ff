package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	blockSlotHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/block_slot"
	cancelBookingHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/create_booking"
	createInvitationHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/create_invitation"
	getAvailableSlotsHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/get_booking"
	getOwnerBookingsHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/get_owner_bookings"
	getScheduleHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/get_schedule"
	loginOwnerHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/login_owner"
	registerOwnerHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/register_owner"
	sendReminderHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/send_reminder"
	updateBookingStatusHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/update_booking_status"
	updateScheduleHandler "github.com/avdmi/salon-booking-service/internal/api/handlers/update_schedule"
	"github.com/avdmi/salon-booking-service/internal/api/middleware"
	"github.com/avdmi/salon-booking-service/internal/config"
	bookingRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/booking"
	ownerRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/owner"
	scheduleRepo "github.com/avdmi/salon-booking-service/internal/infra/storage/schedule"
	mailerClient "github.com/avdmi/salon-booking-service/internal/integrations/mailer"
	bookingsService "github.com/avdmi/salon-booking-service/internal/service/bookings"
	notificationsService "github.com/avdmi/salon-booking-service/internal/service/notifications"
	ownersService "github.com/avdmi/salon-booking-service/internal/service/owners"
	scheduleService "github.com/avdmi/salon-booking-service/internal/service/schedule"
	createBookingUC "github.com/avdmi/salon-booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/avdmi/salon-booking-service/internal/usecase/get_available_slots"
	"github.com/avdmi/salon-booking-service/pkg/dbmetrics"
	"github.com/avdmi/salon-booking-service/pkg/logger"
	"github.com/avdmi/salon-booking-service/pkg/metrics"
	"github.com/avdmi/salon-booking-service/pkg/simpletxmanager"
	"github.com/avdmi/salon-booking-service/pkg/txmanager"
)

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

	log.Info("Starting salon-booking-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент почтового API и сервис уведомлений
	mailer := mailerClient.NewClient(
		cfg.Mailer.BaseURL,
		cfg.Mailer.APIKey,
		cfg.Mailer.Sender,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	)
	notifier := notificationsService.NewService(mailer, cfg.Mailer.Enabled, log)
	log.Info("Mailer initialized (enabled=%t, base_url=%s)", cfg.Mailer.Enabled, cfg.Mailer.BaseURL)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		scheduleRepository *scheduleRepo.Repository
		ownerRepository    *ownerRepo.Repository
	)

	// Интерфейс менеджера транзакций, общий для обеих реализаций
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		ownerRepository = ownerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		ownerRepository = ownerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, notifier, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	ownerSvc := ownersService.NewService(ownerRepository, scheduleRepository, txMgr, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		notifier,
		txMgr,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		scheduleRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	blockSlot := blockSlotHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getOwnerBookings := getOwnerBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	sendReminder := sendReminderHandler.NewHandler(bookingSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	registerOwner := registerOwnerHandler.NewHandler(ownerSvc, log)
	loginOwner := loginOwnerHandler.NewHandler(ownerSvc, log)
	createInvitation := createInvitationHandler.NewHandler(ownerSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Регистрация по приглашению и вход
	api.HandleFunc("/auth/register", registerOwner.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginOwner.Handle).Methods(http.MethodPost)

	// Слоты дня для страницы записи
	api.HandleFunc("/owners/{ownerKey}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи со страницы записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Owner-Key header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/bookings", getOwnerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/remind", sendReminder.Handle).Methods(http.MethodPost)

	// --- Блокировка слотов ---
	protected.HandleFunc("/blocks", blockSlot.Handle).Methods(http.MethodPost)

	// --- Расписание ---
	protected.HandleFunc("/schedule", getSchedule.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key header)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.Admin(cfg.Auth.AdminKey))

	admin.HandleFunc("/invitations", createInvitation.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
