package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	_ "modernc.org/sqlite"

	checkAvailabilityHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/check_availability"
	createBookingHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/create_booking"
	createSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/create_slots"
	getAvailabilitySummaryHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_availability_summary"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_booking"
	getCustomerBookingsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_customer_bookings"
	getMerchantBookingsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_merchant_bookings"
	getMerchantSlotsHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_merchant_slots"
	getWorkingHoursHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/get_working_hours"
	reserveSlotHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/reserve_slot"
	streamSlotUpdatesHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/stream_slot_updates"
	updateBookingStatusHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/update_booking_status"
	updateWorkingHoursHandler "github.com/m04kA/SMC-SlotService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-SlotService/internal/api/middleware"
	"github.com/m04kA/SMC-SlotService/internal/config"
	"github.com/m04kA/SMC-SlotService/internal/infra/cache/summary"
	"github.com/m04kA/SMC-SlotService/internal/infra/feed"
	bookingRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SlotService/internal/infra/storage/schema"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
	workingHoursRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/workinghours"
	availabilityService "github.com/m04kA/SMC-SlotService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-SlotService/internal/service/bookings"
	workingHoursService "github.com/m04kA/SMC-SlotService/internal/service/workinghours"
	createBookingUC "github.com/m04kA/SMC-SlotService/internal/usecase/create_booking"
	createSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/create_slots"
	ensureSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/ensure_slots"
	getAvailableSlotsUC "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
	reserveSlotUC "github.com/m04kA/SMC-SlotService/internal/usecase/reserve_slot"
	"github.com/m04kA/SMC-SlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SlotService/pkg/logger"
	"github.com/m04kA/SMC-SlotService/pkg/metrics"
	"github.com/m04kA/SMC-SlotService/pkg/mq"
	"github.com/m04kA/SMC-SlotService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SlotService/pkg/txmanager"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию (файл + переменные SLOTSVC_*)
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-SlotService...")
	log.Info("Configuration loaded from %s", *configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open(cfg.Database.Driver, cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)
	if cfg.Database.Driver == config.DriverSQLite {
		// SQLite сериализует запись; одно соединение исключает SQLITE_BUSY между транзакциями
		db.SetMaxOpenConns(1)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (driver=%s)", cfg.Database.Driver)

	dialect := psqlbuilder.Dialect(cfg.Database.Driver)
	builder, err := psqlbuilder.New(dialect)
	if err != nil {
		log.Fatal("Failed to create query builder: %v", err)
	}

	if cfg.Database.AutoMigrate {
		if err := schema.Apply(startupCtx, db, dialect); err != nil {
			log.Fatal("Failed to apply schema: %v", err)
		}
		log.Info("Database schema applied")
	}

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Лента событий слотов: SSE-подписчики, кеш сводки и (опционально) RabbitMQ
	broker := feed.NewBroker(cfg.Feed.SubscriberBuffer, log)
	notifiers := feed.Notifiers{broker}

	var summaryCache availabilityService.SummaryCache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(startupCtx).Err(); err != nil {
			// Кеш необязателен: без Redis сводка считается из хранилища
			log.Warn("Redis unavailable, summary cache disabled: %v", err)
		} else {
			cache := summary.NewCache(redisClient, time.Duration(cfg.Redis.TTL)*time.Second, log)
			summaryCache = cache
			notifiers = append(notifiers, cache)
			log.Info("Summary cache enabled (redis=%s)", cfg.Redis.Addr)
		}
	}

	if cfg.AMQP.Enabled {
		publisher, err := mq.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn("RabbitMQ unavailable, slot events will not be published: %v", err)
		} else {
			defer publisher.Close()
			timeout := time.Duration(cfg.AMQP.PublishTimeout) * time.Millisecond
			notifiers = append(notifiers, feed.NewForwarder(publisher, timeout, log))
			log.Info("Slot events forwarded to exchange %s", cfg.AMQP.Exchange)
		}
	}

	// Инициализируем репозитории
	slotStore := feed.NewNotifyingStore(slotRepo.NewRepository(wrappedDB, builder), notifiers)
	bookingRepository := bookingRepo.NewRepository(wrappedDB, builder)
	workingHoursRepository := workingHoursRepo.NewRepository(wrappedDB, builder)

	// Инициализируем сервисы
	hoursSvc := workingHoursService.NewService(workingHoursRepository, cfg.Slots.WorkingHours(), log)
	availabilitySvc := availabilityService.NewService(slotStore, summaryCache, log)
	bookingSvc := bookingsService.NewService(bookingRepository, slotStore, txMgr, log)

	// Инициализируем use cases
	ensureSlotsUseCase := ensureSlotsUC.NewUseCase(
		slotStore,
		hoursSvc,
		metricsCollector,
		cfg.Slots.DefaultDurationMinutes,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ensureSlotsUseCase, availabilitySvc, log)
	reserveSlotUseCase := reserveSlotUC.NewUseCase(slotStore, metricsCollector, log)
	createSlotsUseCase := createSlotsUC.NewUseCase(slotStore, metricsCollector, log)
	createBookingUseCase := createBookingUC.NewUseCase(slotStore, bookingRepository, txMgr, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailabilitySummary := getAvailabilitySummaryHandler.NewHandler(availabilitySvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(reserveSlotUseCase, log)
	streamSlotUpdates := streamSlotUpdatesHandler.NewHandler(broker, time.Duration(cfg.Feed.Heartbeat)*time.Second, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(hoursSvc, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)
	getMerchantBookings := getMerchantBookingsHandler.NewHandler(bookingSvc, log)
	getMerchantSlots := getMerchantSlotsHandler.NewHandler(availabilitySvc, log)
	createSlots := createSlotsHandler.NewHandler(createSlotsUseCase, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(hoursSvc, log)

	// Ограничение частоты для операций записи
	limited := func(h http.HandlerFunc) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			time.Duration(cfg.RateLimit.IdleTTL)*time.Second,
		)
		limited = func(h http.HandlerFunc) http.Handler { return limiter.Middleware(h) }
		log.Info("Rate limiting enabled (%d req/min, burst=%d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату (при первом обращении день генерируется)
	api.HandleFunc("/merchants/{merchantId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Сводка свободных/занятых слотов по датам
	api.HandleFunc("/merchants/{merchantId}/availability-summary", getAvailabilitySummary.Handle).Methods(http.MethodGet)

	// Предварительная проверка времени
	api.HandleFunc("/merchants/{merchantId}/slots/check", checkAvailability.Handle).Methods(http.MethodGet)

	// Поток изменений слотов (SSE)
	api.HandleFunc("/merchants/{merchantId}/slots/stream", streamSlotUpdates.Handle).Methods(http.MethodGet)

	// Рабочие часы мастера
	api.HandleFunc("/merchants/{merchantId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Слоты и бронирования клиента ---
	protected.Handle("/slots/reserve", limited(reserveSlot.Handle)).Methods(http.MethodPost)
	protected.Handle("/bookings", limited(createBooking.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// --- Управление для мастера ---
	protected.HandleFunc("/merchants/{merchantId}/bookings", getMerchantBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/merchants/{merchantId}/slots", getMerchantSlots.Handle).Methods(http.MethodGet)
	protected.Handle("/merchants/{merchantId}/slots", limited(createSlots.Handle)).Methods(http.MethodPost)
	protected.HandleFunc("/merchants/{merchantId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	// SSE-соединения не завершаются сами: Shutdown ждет их до таймаута
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
