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
	"github.com/redis/go-redis/v9"

	assessRiskHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/assess_risk"
	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	checkAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/check_availability"
	checkBookingLimitHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/check_booking_limit"
	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getCustomerAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_customer_appointments"
	getScheduleConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_schedule_config"
	manageBlackoutsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_blackouts"
	manageCapacityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_capacity"
	manageLimitHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_limit"
	manageStaffUnavailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/manage_staff_unavailability"
	recommendStaffHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/recommend_staff"
	recommendTimeSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/recommend_time_slots"
	suggestAlternativesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/suggest_alternatives"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	blackoutRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/blackout"
	capacityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/capacity"
	limitSettingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/limitsetting"
	staffRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/staff"
	appointmentsService "github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	scheduleService "github.com/m04kA/SMC-SchedulingService/internal/service/schedule"
	assessRiskUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/assess_risk"
	checkAvailabilityUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_availability"
	checkBookingLimitUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/check_booking_limit"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	recommendStaffUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_staff"
	recommendTimeSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/recommend_time_slots"
	suggestAlternativesUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml")

	// Параметры расписания
	slotGrid := cfg.Schedule.SlotGrid()
	closedWeekdays, err := cfg.Schedule.ParseClosedWeekdays()
	if err != nil {
		log.Fatal("Failed to parse closed weekdays: %v", err)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository  *appointmentRepo.Repository
		blackoutRepository     *blackoutRepo.Repository
		capacityRepository     *capacityRepo.Repository
		limitSettingRepository *limitSettingRepo.Repository
		staffRepository        *staffRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		blackoutRepository = blackoutRepo.NewRepository(wrappedDB)
		capacityRepository = capacityRepo.NewRepository(wrappedDB)
		limitSettingRepository = limitSettingRepo.NewRepository(wrappedDB)
		staffRepository = staffRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		blackoutRepository = blackoutRepo.NewRepository(db)
		capacityRepository = capacityRepo.NewRepository(db)
		limitSettingRepository = limitSettingRepo.NewRepository(db)
		staffRepository = staffRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	scheduleSvc := scheduleService.NewService(
		blackoutRepository,
		capacityRepository,
		limitSettingRepository,
		staffRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		appointmentRepository,
		blackoutRepository,
		capacityRepository,
		closedWeekdays,
		log,
	)
	suggestAlternativesUseCase := suggestAlternativesUC.NewUseCase(
		appointmentRepository,
		blackoutRepository,
		capacityRepository,
		slotGrid,
		closedWeekdays,
		log,
	)
	recommendStaffUseCase := recommendStaffUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		log,
	)
	recommendTimeSlotsUseCase := recommendTimeSlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		slotGrid,
		log,
	)
	assessRiskUseCase := assessRiskUC.NewUseCase(appointmentRepository, log)
	checkBookingLimitUseCase := checkBookingLimitUC.NewUseCase(
		appointmentRepository,
		limitSettingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		appointmentRepository,
		blackoutRepository,
		capacityRepository,
		limitSettingRepository,
		txMgr,
		closedWeekdays,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	suggestAlternatives := suggestAlternativesHandler.NewHandler(suggestAlternativesUseCase, log)
	recommendStaff := recommendStaffHandler.NewHandler(recommendStaffUseCase, log)
	recommendTimeSlots := recommendTimeSlotsHandler.NewHandler(recommendTimeSlotsUseCase, log)
	getScheduleConfig := getScheduleConfigHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	assessRisk := assessRiskHandler.NewHandler(assessRiskUseCase, log)
	checkBookingLimit := checkBookingLimitHandler.NewHandler(checkBookingLimitUseCase, log)
	manageBlackouts := manageBlackoutsHandler.NewHandler(scheduleSvc, log)
	manageCapacity := manageCapacityHandler.NewHandler(scheduleSvc, log)
	manageLimit := manageLimitHandler.NewHandler(scheduleSvc, log)
	manageStaffUnavailability := manageStaffUnavailabilityHandler.NewHandler(scheduleSvc, log)

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

	public := api.PathPrefix("").Subrouter()

	// Кеш ответов публичных GET-эндпоинтов (если включен)
	if cfg.Cache.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis unreachable, response cache disabled: %v", err)
		} else {
			cache := middleware.NewResponseCache(
				redisClient,
				time.Duration(cfg.Cache.TTLSeconds)*time.Second,
				log,
			)
			public.Use(cache.Middleware())
			log.Info("Response cache enabled (redis=%s, ttl=%ds)", cfg.Cache.RedisAddr, cfg.Cache.TTLSeconds)
		}
	}

	// Проверка доступности слота
	public.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// Альтернативные слоты
	public.HandleFunc("/alternatives", suggestAlternatives.Handle).Methods(http.MethodGet)

	// Рекомендации по сотрудникам и слотам
	public.HandleFunc("/recommendations/staff", recommendStaff.Handle).Methods(http.MethodGet)
	public.HandleFunc("/recommendations/slots", recommendTimeSlots.Handle).Methods(http.MethodGet)

	// Сводная конфигурация расписания
	public.HandleFunc("/schedule/config", getScheduleConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи на прием ---
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/risk", assessRisk.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/booking-limit", checkBookingLimit.Handle).Methods(http.MethodGet)

	// --- Администрирование (статусы и расписание) ---
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	protected.HandleFunc("/schedule/blackouts", manageBlackouts.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/blackouts", manageBlackouts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blackouts/{blackoutId}", manageBlackouts.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/schedule/capacity", manageCapacity.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/capacity", manageCapacity.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/capacity/{bucketId}", manageCapacity.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/schedule/capacity/{bucketId}", manageCapacity.HandleDelete).Methods(http.MethodDelete)

	protected.HandleFunc("/schedule/limit", manageLimit.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/limit", manageLimit.HandleSet).Methods(http.MethodPut)

	protected.HandleFunc("/staff/{staffId}/unavailability", manageStaffUnavailability.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/staff/{staffId}/unavailability", manageStaffUnavailability.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/staff/unavailability/{recordId}", manageStaffUnavailability.HandleDelete).Methods(http.MethodDelete)

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
