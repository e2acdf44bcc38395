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
	"github.com/rs/cors"

	cancelBookingHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/create_booking"
	getAdminBookingsHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_admin_bookings"
	getAdminCalendarHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_admin_calendar"
	getBookingHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_booking"
	getCalendarConfigHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_calendar_config"
	getNextBookingHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_next_booking"
	getSubscriptionHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_subscription"
	getTimeSlotsHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_time_slots"
	getUserBookingsHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/get_user_bookings"
	updateAdminCalendarHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/update_admin_calendar"
	updateBookingStatusHandler "github.com/artemkls/HMS-BookingService/internal/api/handlers/update_booking_status"
	"github.com/artemkls/HMS-BookingService/internal/api/middleware"
	"github.com/artemkls/HMS-BookingService/internal/config"
	calendarCache "github.com/artemkls/HMS-BookingService/internal/infra/cache/calendar"
	bookingRepo "github.com/artemkls/HMS-BookingService/internal/infra/storage/booking"
	calendarRepo "github.com/artemkls/HMS-BookingService/internal/infra/storage/calendar"
	subscriptionServiceClient "github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
	bookingsService "github.com/artemkls/HMS-BookingService/internal/service/bookings"
	calendarService "github.com/artemkls/HMS-BookingService/internal/service/calendar"
	createBookingUC "github.com/artemkls/HMS-BookingService/internal/usecase/create_booking"
	getTimeSlotsUC "github.com/artemkls/HMS-BookingService/internal/usecase/get_time_slots"
	"github.com/artemkls/HMS-BookingService/pkg/dbmetrics"
	"github.com/artemkls/HMS-BookingService/pkg/logger"
	"github.com/artemkls/HMS-BookingService/pkg/metrics"
	"github.com/artemkls/HMS-BookingService/pkg/simpletxmanager"
	"github.com/artemkls/HMS-BookingService/pkg/txmanager"
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

	log.Info("Starting HMS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиента SubscriptionService
	subscriptionClient := subscriptionServiceClient.NewClient(
		cfg.Subscription.URL,
		time.Duration(cfg.Subscription.Timeout)*time.Second,
		log,
	)
	log.Info("SubscriptionService client initialized (url=%s, timeout=%ds)",
		cfg.Subscription.URL, cfg.Subscription.Timeout)

	// Интерфейс transaction manager для usecases
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		calendarRepository *calendarRepo.Repository
		txMgr              TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		calendarRepository = calendarRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		calendarRepository = calendarRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хранилище конфигурации календаря: с Redis кэшем или напрямую из БД
	var configStore calendarService.ConfigStore = calendarRepository

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Warn("Redis ping failed, cache degrades to direct reads: %v", err)
		} else {
			log.Info("Connected to Redis at %s", cfg.Redis.Addr)
		}

		configStore = calendarCache.NewCachedStore(
			calendarRepository,
			redisClient,
			time.Duration(cfg.Redis.CacheTTL)*time.Second,
			log,
		)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	calendarSvc := calendarService.NewService(configStore, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		configStore,
		subscriptionClient,
		txMgr,
		log,
	)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		bookingRepository,
		configStore,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	getCalendarConfig := getCalendarConfigHandler.NewHandler(calendarSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getNextBooking := getNextBookingHandler.NewHandler(bookingSvc, log)
	getSubscription := getSubscriptionHandler.NewHandler(subscriptionClient, log)
	getAdminCalendar := getAdminCalendarHandler.NewHandler(calendarSvc, log)
	updateAdminCalendar := updateAdminCalendarHandler.NewHandler(calendarSvc, log)
	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)

	// Middleware аутентификации
	authMw := middleware.NewAuth(cfg.Auth.JWTSecret)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с rate limiter)
	// ============================================================

	public := api.PathPrefix("").Subrouter()

	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		public.Use(rl.Limit)
		log.Info("Rate limiter enabled for public routes (rps=%.1f, burst=%d)",
			cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// Конфигурация календаря для виджета бронирования
	public.HandleFunc("/bookings/calendar", getCalendarConfig.Handle).Methods(http.MethodGet)

	// Сетка слотов дня со счетчиками занятости
	public.HandleFunc("/bookings/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// CUSTOMER ROUTES (требуют Bearer токен)
	// ============================================================

	customer := api.PathPrefix("").Subrouter()
	customer.Use(authMw.Require)

	// Создание бронирования
	customer.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Ближайшее активное бронирование адреса
	customer.HandleFunc("/bookings/next", getNextBooking.Handle).Methods(http.MethodGet)

	// Подписка адреса
	customer.HandleFunc("/bookings/subscription", getSubscription.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	customer.HandleFunc("/bookings/cancel/{bookingId}", cancelBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID (после литеральных путей)
	customer.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	customer.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют Bearer токен с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(authMw.RequireAdmin)

	// Полный документ конфигурации календаря
	admin.HandleFunc("/calendar", getAdminCalendar.Handle).Methods(http.MethodGet)

	// Обновление конфигурации календаря
	admin.HandleFunc("/calendar", updateAdminCalendar.Handle).Methods(http.MethodPut)

	// Таблица бронирований с фильтрацией
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// CORS для браузерного клиента
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
