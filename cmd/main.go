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

	"github.com/m04kA/LimpMe-BookingService/internal/api/handlers"
	cancelBookingHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/cancel_booking"
	getAuthPageHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/get_auth_page"
	getDashboardHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/get_dashboard"
	getLandingHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/get_landing"
	getPlansHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/get_plans"
	getUserBookingsHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/get_user_bookings"
	rescheduleBookingHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/reschedule_booking"
	selectDateTimeHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/select_datetime"
	selectLocationHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/select_location"
	selectTechnicianHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/select_technician"
	signInHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/sign_in"
	signOutHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/sign_out"
	signUpHandler "github.com/m04kA/LimpMe-BookingService/internal/api/handlers/sign_up"
	"github.com/m04kA/LimpMe-BookingService/internal/api/middleware"
	"github.com/m04kA/LimpMe-BookingService/internal/config"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/lock"
	bookingRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/booking"
	draftStore "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/draft"
	"github.com/m04kA/LimpMe-BookingService/internal/infra/storage/revocation"
	userRepo "github.com/m04kA/LimpMe-BookingService/internal/infra/storage/user"
	authService "github.com/m04kA/LimpMe-BookingService/internal/service/auth"
	bookingsService "github.com/m04kA/LimpMe-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/LimpMe-BookingService/internal/service/catalog"
	"github.com/m04kA/LimpMe-BookingService/internal/session"
	rescheduleBookingUC "github.com/m04kA/LimpMe-BookingService/internal/usecase/reschedule_booking"
	submitBookingUC "github.com/m04kA/LimpMe-BookingService/internal/usecase/submit_booking"
	wizardStepUC "github.com/m04kA/LimpMe-BookingService/internal/usecase/wizard_step"
	"github.com/m04kA/LimpMe-BookingService/migrations"
	"github.com/m04kA/LimpMe-BookingService/pkg/clock"
	"github.com/m04kA/LimpMe-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LimpMe-BookingService/pkg/logger"
	"github.com/m04kA/LimpMe-BookingService/pkg/metrics"
	"github.com/m04kA/LimpMe-BookingService/pkg/txmanager"
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

	log.Info("Starting LimpMe-BookingService...")

	// Инициализируем метрики (если включены). nil коллектор ничего не пишет.
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

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	if cfg.Database.AutoMigrate {
		if err := migrations.Apply(context.Background(), wrappedDB); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Черновики, блокировки отправки и отозванные токены: Redis или память процесса
	var (
		drafts  submitBookingUC.DraftStore
		locker  submitBookingUC.Locker
		revoked session.RevocationStore
	)

	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		drafts = draftStore.NewRedisStore(redisClient, cfg.Booking.DraftLifetime())
		locker = lock.NewRedisLocker(redisClient)
		revoked = revocation.NewRedisStore(redisClient)
	} else {
		log.Warn("Redis disabled, drafts and sessions are kept in process memory")
		drafts = draftStore.NewMemoryStore(cfg.Booking.DraftLifetime())
		locker = lock.NewMemoryLocker()
		revoked = revocation.NewMemoryStore()
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	timeProvider := clock.New(cfg.Booking.Location())
	sessionProvider := session.NewProvider(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenLifetime(), revoked)

	// Инициализируем сервисы
	authSvc := authService.NewService(userRepository, sessionProvider, cfg.Auth.BcryptCost, log)
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, timeProvider, metricsCollector, log)
	catalogSvc := catalogService.NewService(cfg.Booking.PlansURL, cfg.Booking.WhatsAppURL)

	// Инициализируем use cases
	wizardStepUseCase := wizardStepUC.NewUseCase(drafts, timeProvider, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		drafts,
		locker,
		txMgr,
		timeProvider,
		metricsCollector,
		log,
		submitBookingUC.Options{
			RedirectDelay:     cfg.Booking.RedirectAfter(),
			LockTTL:           cfg.Booking.SubmitLockTTL(),
			CancelRescheduled: cfg.Booking.CancelRescheduled,
		},
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(bookingRepository, drafts, timeProvider, log)

	authMiddleware := middleware.NewAuth(sessionProvider, log)
	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal("Failed to configure rate limiter: %v", err)
	}
	stopRateLimitCh := make(chan struct{})
	go rateLimiter.Run(stopRateLimitCh)

	// Инициализируем handlers
	getLanding := getLandingHandler.NewHandler(catalogSvc, log)
	getPlans := getPlansHandler.NewHandler(catalogSvc, log)
	getAuthPage := getAuthPageHandler.NewHandler(authMiddleware)
	signUp := signUpHandler.NewHandler(authSvc, cfg.Auth.SecureCookie, log)
	signIn := signInHandler.NewHandler(authSvc, cfg.Auth.SecureCookie, log)
	signOut := signOutHandler.NewHandler(authSvc, cfg.Auth.SecureCookie, log)
	getDashboard := getDashboardHandler.NewHandler()
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	selectLocation := selectLocationHandler.NewHandler(wizardStepUseCase, log)
	selectDateTime := selectDateTimeHandler.NewHandler(wizardStepUseCase, log)
	selectTechnician := selectTechnicianHandler.NewHandler(wizardStepUseCase, submitBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		if err := wrappedDB.PingContext(req.Context()); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		log.Warn("%s %s - Route not found", req.Method, req.URL.Path)
		handlers.RespondNotFound(w, "página não encontrada")
	})

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без сессии)
	// ============================================================

	api.HandleFunc("/", getLanding.Handle).Methods(http.MethodGet)
	api.HandleFunc("/planos", getPlans.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth", getAuthPage.Handle).Methods(http.MethodGet)

	// Вход и регистрация ограничены по IP
	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Use(rateLimiter.Handler)
	authRoutes.HandleFunc("/sign-up", signUp.Handle).Methods(http.MethodPost)
	authRoutes.HandleFunc("/sign-in", signIn.Handle).Methods(http.MethodPost)

	// Отправка черновика сама отвечает 401 без сессии
	api.Handle("/select-technician", authMiddleware.Optional(http.HandlerFunc(selectTechnician.Submit))).
		Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию: Bearer токен или cookie)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Handler)

	// --- Личный кабинет ---
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/sign-out", signOut.Handle).Methods(http.MethodPost)

	// --- Мои бронирования ---
	protected.HandleFunc("/my-bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/my-bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/my-bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// --- Мастер бронирования ---
	protected.HandleFunc("/select-location", selectLocation.Get).Methods(http.MethodGet)
	protected.HandleFunc("/select-location", selectLocation.Post).Methods(http.MethodPost)
	protected.HandleFunc("/select-location/continue", selectLocation.Continue).Methods(http.MethodPost)

	protected.HandleFunc("/select-datetime", selectDateTime.Get).Methods(http.MethodGet)
	protected.HandleFunc("/select-datetime", selectDateTime.Post).Methods(http.MethodPost)
	protected.HandleFunc("/select-datetime/continue", selectDateTime.Continue).Methods(http.MethodPost)
	protected.HandleFunc("/select-datetime/back", selectDateTime.Back).Methods(http.MethodPost)

	protected.HandleFunc("/select-technician", selectTechnician.Get).Methods(http.MethodGet)
	protected.HandleFunc("/select-technician/back", selectTechnician.Back).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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

	close(stopRateLimitCh)

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
