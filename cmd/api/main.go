package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/velora-studio/booking-api/pkg/auth"
	"github.com/velora-studio/booking-api/pkg/logger"
	"github.com/velora-studio/booking-api/pkg/metrics"
	"github.com/velora-studio/booking-api/pkg/security"

	"github.com/velora-studio/booking-api/internal/calendarsync"
	"github.com/velora-studio/booking-api/internal/config"
	"github.com/velora-studio/booking-api/internal/email"
	"github.com/velora-studio/booking-api/internal/handler"
	adminHandler "github.com/velora-studio/booking-api/internal/handler/admin"
	authHandler "github.com/velora-studio/booking-api/internal/handler/auth"
	bookingHandler "github.com/velora-studio/booking-api/internal/handler/booking"
	catalogHandler "github.com/velora-studio/booking-api/internal/handler/catalog"
	scheduleHandler "github.com/velora-studio/booking-api/internal/handler/schedule"
	"github.com/velora-studio/booking-api/internal/lock"
	"github.com/velora-studio/booking-api/internal/middleware"
	"github.com/velora-studio/booking-api/internal/model"
	"github.com/velora-studio/booking-api/internal/payment"
	"github.com/velora-studio/booking-api/internal/repository/cached"
	"github.com/velora-studio/booking-api/internal/repository/postgres"
	"github.com/velora-studio/booking-api/internal/router"
	authService "github.com/velora-studio/booking-api/internal/service/auth"
	bookingService "github.com/velora-studio/booking-api/internal/service/booking"
	catalogService "github.com/velora-studio/booking-api/internal/service/catalog"
	"github.com/velora-studio/booking-api/internal/service/notification"
	"github.com/velora-studio/booking-api/internal/service/pricing"
	"github.com/velora-studio/booking-api/internal/service/schedule"
	"github.com/velora-studio/booking-api/internal/service/stats"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})

	// Initialize database
	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Initialize Redis (date locks, readiness probe)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// Initialize repositories
	bookingRepo := postgres.NewBookingRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	blockedRepo := cached.NewBlockedDateRepository(postgres.NewBlockedDateRepository(db), time.Minute)
	catalogRepo := postgres.NewCatalogRepository(db)
	staffRepo := postgres.NewStaffUserRepository(db)

	// Load the service catalog, falling back to the built-in seed when the
	// catalog tables are empty.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	services, err := catalogRepo.ListServices(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load service catalog")
	}
	if len(services) == 0 {
		log.Info().Msg("catalog tables empty, using built-in service catalog")
		services = catalogService.DefaultServices()
	}
	catalog := catalogService.New(services)

	hours, err := businessHours(cfg.Schedule.Hours)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid business hours configuration")
	}

	// Initialize services
	appMetrics := metrics.NewMetrics("booking", "api")
	calc := pricing.NewCalculator(catalog)
	sched := schedule.NewService(hours, cfg.Schedule.SlotIntervalMinutes)

	paymentClient := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, 10*time.Second)

	var mirror calendarsync.Mirror = calendarsync.NopMirror{}
	if cfg.Calendar.Enabled {
		mirror = calendarsync.NewClient(cfg.Calendar.BaseURL, cfg.Calendar.Token, cfg.Calendar.CalendarID, 10*time.Second)
	}

	emailSvc := email.Service(email.NewNopService())
	if cfg.Email.Enabled {
		emailSvc = email.NewSMTPService(email.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		})
	}
	notifier := notification.NewService(emailSvc, cfg.Salon.Name)

	bookingSvc := bookingService.NewService(
		bookingRepo,
		customerRepo,
		blockedRepo,
		catalog,
		calc,
		sched,
		paymentClient,
		mirror,
		notifier,
		lock.NewRedisLocker(redisClient),
		appMetrics,
		bookingService.Config{
			DepositCents: cfg.Payment.DepositCents,
			Currency:     cfg.Payment.Currency,
		},
	)

	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	authSvc := authService.NewService(staffRepo, security.NewBcryptHasher(0), jwtSvc)
	statsSvc := stats.NewService()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	// Initialize handlers
	h := handler.NewHandler(db, redisClient)
	authH := authHandler.NewHandler(authSvc)
	bookingH := bookingHandler.NewHandler(bookingSvc)
	catalogH := catalogHandler.NewHandler(catalog)
	scheduleH := scheduleHandler.NewHandler(bookingSvc)
	adminH := adminHandler.NewHandler(bookingRepo, customerRepo, statsSvc)

	// Setup router
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Server.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	}

	r := router.NewRouter(
		authMiddleware,
		h,
		authH,
		bookingH,
		catalogH,
		scheduleH,
		adminH,
		router.Config{
			RateLimitRPS:   cfg.Server.RateLimitRPS,
			RateLimitBurst: cfg.Server.RateLimitBurst,
			RequestTimeout: cfg.Server.Timeout(),
			CORS:           corsConfig,
			MetricsPrefix:  "booking_api",
		},
	)
	r.Setup()

	// Create server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	// Start server
	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}

func businessHours(spec map[string]string) (model.BusinessHours, error) {
	if len(spec) == 0 {
		spec = map[string]string{
			"monday":    "09:00-18:00",
			"tuesday":   "09:00-18:00",
			"wednesday": "09:00-18:00",
			"thursday":  "09:00-18:00",
			"friday":    "09:00-18:00",
			"saturday":  "09:00-18:00",
			"sunday":    "closed",
		}
	}
	return model.ParseBusinessHours(spec)
}
