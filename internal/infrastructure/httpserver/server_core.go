package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	customMiddleware "github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

type ServerDeps struct {
	AuthService        ports.AuthService
	UserService        ports.UserService
	PropertyService    ports.PropertyService
	LeadService        ports.LeadService
	BookingService     ports.BookingService
	AnalyticsService   ports.AnalyticsService
	ReportService      ports.ReportService
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	rateLimitCfg   *config.RateLimitConfig
	mapsCfg        *config.MapsConfig
	logger         *logrus.Logger
	authSvc        ports.AuthService
	userService    ports.UserService
	propertySvc    ports.PropertyService
	leadSvc        ports.LeadService
	bookingSvc     ports.BookingService
	analyticsSvc   ports.AnalyticsService
	reportSvc      ports.ReportService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, rateLimitCfg *config.RateLimitConfig, mapsCfg *config.MapsConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true

	server := &Server{
		echo:           e,
		config:         serverConfig,
		rateLimitCfg:   rateLimitCfg,
		mapsCfg:        mapsCfg,
		logger:         logger,
		authSvc:        deps.AuthService,
		userService:    deps.UserService,
		propertySvc:    deps.PropertyService,
		leadSvc:        deps.LeadService,
		bookingSvc:     deps.BookingService,
		analyticsSvc:   deps.AnalyticsService,
		reportSvc:      deps.ReportService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			deps.RateLimiterService,
			rateLimitCfg,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
