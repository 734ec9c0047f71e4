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

	cancelReservationHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/check_availability"
	confirmReservationHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/confirm_reservation"
	createReservationHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/create_reservation"
	getReservationHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/get_reservation"
	getShopReservationsHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/get_shop_reservations"
	getShopScheduleHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/get_shop_schedule"
	getUserReservationsHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/get_user_reservations"
	rescheduleReservationHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/reschedule_reservation"
	updateShopScheduleHandler "github.com/kmalkova/SRS-ReservationService/internal/api/handlers/update_shop_schedule"
	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	"github.com/kmalkova/SRS-ReservationService/internal/config"
	reservationRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/reservation"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	shopServiceClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	reservationsService "github.com/kmalkova/SRS-ReservationService/internal/service/reservations"
	scheduleService "github.com/kmalkova/SRS-ReservationService/internal/service/schedule"
	checkAvailabilityUC "github.com/kmalkova/SRS-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/kmalkova/SRS-ReservationService/internal/usecase/create_reservation"
	rescheduleReservationUC "github.com/kmalkova/SRS-ReservationService/internal/usecase/reschedule_reservation"
	"github.com/kmalkova/SRS-ReservationService/pkg/dbmetrics"
	"github.com/kmalkova/SRS-ReservationService/pkg/logger"
	"github.com/kmalkova/SRS-ReservationService/pkg/metrics"
	"github.com/kmalkova/SRS-ReservationService/pkg/simpletxmanager"
	"github.com/kmalkova/SRS-ReservationService/pkg/txmanager"
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

	log.Info("Starting SRS-ReservationService...")
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

	// Инициализируем клиента ShopService
	shopClient := shopServiceClient.NewClient(
		cfg.ShopService.URL,
		time.Duration(cfg.ShopService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ShopService=%s timeout=%ds)",
		cfg.ShopService.URL, cfg.ShopService.Timeout)

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		scheduleRepository    *scheduleRepo.Repository
	)

	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		shopClient,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		shopClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		shopClient,
		txMgr,
		log,
	)
	rescheduleReservationUseCase := rescheduleReservationUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		shopClient,
		txMgr,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		reservationRepository,
		scheduleRepository,
		shopClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	rescheduleReservation := rescheduleReservationHandler.NewHandler(rescheduleReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationsSvc, log)
	confirmReservation := confirmReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	getShopReservations := getShopReservationsHandler.NewHandler(reservationsSvc, log)
	getShopSchedule := getShopScheduleHandler.NewHandler(scheduleSvc, log)
	updateShopSchedule := updateShopScheduleHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка доступности окна
	api.HandleFunc("/reservations/check", checkAvailability.Handle).Methods(http.MethodPost)

	// Расписание магазина
	api.HandleFunc("/shops/{shopId}/schedule", getShopSchedule.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// Перенос бронирования
	protected.HandleFunc("/reservations/{reservationId}/reschedule", rescheduleReservation.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования (менеджер магазина)
	protected.HandleFunc("/reservations/{reservationId}/confirm", confirmReservation.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Управление магазином (для менеджеров) ---
	// Список бронирований магазина
	protected.HandleFunc("/shops/{shopId}/reservations", getShopReservations.Handle).Methods(http.MethodGet)

	// Обновление расписания магазина
	protected.HandleFunc("/shops/{shopId}/schedule", updateShopSchedule.Handle).Methods(http.MethodPut)

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
