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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	exportSubmissionsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/export_submissions"
	findNextSlotHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/find_next_slot"
	getCalendarHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_calendar"
	getLimitsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_limits"
	setCalendarStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/set_calendar_status"
	updateLimitsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_limits"
	updateSubmissionStatusHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_submission_status"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	"github.com/m04kA/SMC-ReservationService/internal/identity"
	calendarRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/calendar"
	settingsRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/settings"
	submissionRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/submission"
	calendarService "github.com/m04kA/SMC-ReservationService/internal/service/calendar"
	exportService "github.com/m04kA/SMC-ReservationService/internal/service/export"
	settingsService "github.com/m04kA/SMC-ReservationService/internal/service/settings"
	submissionsService "github.com/m04kA/SMC-ReservationService/internal/service/submissions"
	checkAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
	findNextSlotUC "github.com/m04kA/SMC-ReservationService/internal/usecase/find_next_slot"
	reserveUC "github.com/m04kA/SMC-ReservationService/internal/usecase/reserve"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func runMigrations(db *sql.DB) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, "migrations")
}

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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Применяем миграции
	if err := runMigrations(db); err != nil {
		log.Fatal("Failed to run migrations: %v", err)
	}
	log.Info("Migrations applied")

	// Инициализируем репозитории
	submissionRepository := submissionRepo.NewRepository(db)
	calendarRepository := calendarRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)

	// Transaction manager для сериализуемой секции приема заявок
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	settingsSvc := settingsService.NewService(settingsRepository, log)
	calendarSvc := calendarService.NewService(calendarRepository, log)
	exportSvc := exportService.NewService(submissionRepository, log)
	submissionsSvc := submissionsService.NewService(submissionRepository, log)

	// Инициализируем use cases
	reserveUseCase := reserveUC.NewUseCase(
		submissionRepository,
		calendarRepository,
		settingsSvc,
		txMgr,
		identity.NewPhoneExtractor(),
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		submissionRepository,
		calendarRepository,
		settingsSvc,
		log,
	)
	findNextSlotUseCase := findNextSlotUC.NewUseCase(
		submissionRepository,
		calendarRepository,
		settingsSvc,
		log,
	)

	// Инициализируем handlers
	createReservation := createReservationHandler.NewHandler(reserveUseCase, metricsCollector, log)
	createReservationAdmin := createReservationHandler.NewAdminHandler(reserveUseCase, metricsCollector, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	setCalendarStatus := setCalendarStatusHandler.NewHandler(calendarSvc, log)
	getLimits := getLimitsHandler.NewHandler(settingsSvc, log)
	updateLimits := updateLimitsHandler.NewHandler(settingsSvc, log)
	exportSubmissions := exportSubmissionsHandler.NewHandler(exportSvc, log)
	updateSubmissionStatus := updateSubmissionStatusHandler.NewHandler(submissionsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Подача заявки на бронирование даты
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Проверка доступности даты (справочная)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Поиск ближайшего свободного дня (справочный)
	api.HandleFunc("/slots/next", findNextSlot.Handle).Methods(http.MethodGet)

	// Открытые дни календаря
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// Действующие лимиты
	api.HandleFunc("/settings/limits", getLimits.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Открытие/закрытие даты
	admin.HandleFunc("/calendar/{date}", setCalendarStatus.Handle).Methods(http.MethodPut)

	// Обновление лимитов
	admin.HandleFunc("/settings/limits", updateLimits.Handle).Methods(http.MethodPut)

	// Выгрузка заявок в Excel
	admin.HandleFunc("/admin/submissions/export", exportSubmissions.Handle).Methods(http.MethodGet)

	// Внесение заявки оператором за клиента
	admin.HandleFunc("/admin/reservations", createReservationAdmin.Handle).Methods(http.MethodPost)

	// Смена статуса заявки (review/archive/reject)
	admin.HandleFunc("/admin/submissions/{id}/status", updateSubmissionStatus.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
