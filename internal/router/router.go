package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/velora-studio/booking-api/internal/handler"
	adminHandler "github.com/velora-studio/booking-api/internal/handler/admin"
	authHandler "github.com/velora-studio/booking-api/internal/handler/auth"
	bookingHandler "github.com/velora-studio/booking-api/internal/handler/booking"
	catalogHandler "github.com/velora-studio/booking-api/internal/handler/catalog"
	scheduleHandler "github.com/velora-studio/booking-api/internal/handler/schedule"
	"github.com/velora-studio/booking-api/internal/middleware"
)

type Config struct {
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration
	CORS           middleware.CORSConfig
	MetricsPrefix  string
}

type Router struct {
	engine    *gin.Engine
	auth      *middleware.AuthMiddleware
	h         *handler.Handler
	authH     *authHandler.Handler
	bookingH  *bookingHandler.Handler
	catalogH  *catalogHandler.Handler
	scheduleH *scheduleHandler.Handler
	adminH    *adminHandler.Handler
	metrics   *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    prefix + "_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		requestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: prefix + "_requests_total",
			Help: "Total HTTP requests",
		}, []string{"method", "path", "status"}),
	}
}

func NewRouter(
	auth *middleware.AuthMiddleware,
	h *handler.Handler,
	authH *authHandler.Handler,
	bookingH *bookingHandler.Handler,
	catalogH *catalogHandler.Handler,
	scheduleH *scheduleHandler.Handler,
	adminH *adminHandler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	r := &Router{
		engine:    engine,
		auth:      auth,
		h:         h,
		authH:     authH,
		bookingH:  bookingH,
		catalogH:  catalogH,
		scheduleH: scheduleH,
		adminH:    adminH,
		metrics:   initRouterMetrics(config.MetricsPrefix),
	}

	timeout := config.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.Timeout(middleware.TimeoutConfig{Duration: timeout}),
	)
	engine.Use(middleware.CORS(config.CORS))

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RPS:   config.RateLimitRPS,
		Burst: config.RateLimitBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	r.setupHealthCheck(api)

	// Public routes
	r.authH.RegisterRoutes(api)
	r.catalogH.RegisterRoutes(api)
	r.scheduleH.RegisterPublicRoutes(api)
	r.bookingH.RegisterPublicRoutes(api)

	// Staff routes
	staff := api.Group("")
	staff.Use(r.auth.Authenticate())
	r.bookingH.RegisterStaffRoutes(staff)
	r.scheduleH.RegisterStaffRoutes(staff)
	r.adminH.RegisterRoutes(staff)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
	}
}
