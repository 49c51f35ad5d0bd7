package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	config "github.com/indohomz/indohomz-backend/configs"
	"github.com/indohomz/indohomz-backend/internal/application/services"
	"github.com/indohomz/indohomz-backend/internal/core/ports"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/ai"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/db"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/email"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/health"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/httpserver"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/recaptcha"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/redis"
	"github.com/indohomz/indohomz-backend/internal/infrastructure/repositories"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting IndoHomz backend...")

	// Initialize database (apply pool settings from config)
	database, err := db.New(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	healthCheckers := []ports.HealthChecker{health.NewDBHealthChecker(database)}

	// The in-memory store always exists; it is the fallback when Redis fails
	// and the only store when Redis is disabled.
	memoryStore := repositories.NewMemoryRateLimitStore(cfg.RateLimit.CleanupInterval, cfg.RateLimit.Retention, logger)
	memoryStore.Start()
	defer memoryStore.Stop()

	var primaryStore ports.RateLimitStore
	var propertyRepo ports.PropertyRepository = repositories.NewPropertyRepository(database, logger)

	if cfg.Redis.Enabled {
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.WithError(err).Warn("Failed to connect to Redis, continuing with in-memory rate limiting")
		} else {
			defer redisClient.Close()
			logger.Info("Connected to Redis successfully")

			primaryStore = repositories.NewRedisRateLimitStore(redisClient, cfg.RateLimit.KeyPrefix)
			redisCache := redis.NewRedisCache(redisClient, "appcache")
			propertyRepo = repositories.NewCachingPropertyRepository(propertyRepo, redisCache, 5*time.Minute)
			healthCheckers = append(healthCheckers, health.NewRedisHealthChecker(redisClient))
		}
	}

	rateLimiterService := services.NewRateLimiterService(primaryStore, memoryStore, logger)

	// Initialize db repository implementations
	userRepo := repositories.NewUserRepository(database, logger)
	leadRepo := repositories.NewLeadRepository(database, logger)
	bookingRepo := repositories.NewBookingRepository(database, logger)

	// Outbound integrations
	emailService := email.NewEmailService(&cfg.Email, logger)
	recaptchaVerifier := recaptcha.NewVerifier(&cfg.Recaptcha, logger)
	reportGenerator := ai.NewOpenAIGenerator(&cfg.OpenAI, logger)

	// Wire services
	authService := services.NewAuthService(userRepo, emailService, &cfg.JWT, logger)
	userService := services.NewUserService(userRepo, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	leadService := services.NewLeadService(leadRepo, propertyRepo, emailService, recaptchaVerifier, logger)
	bookingService := services.NewBookingService(bookingRepo, propertyRepo, leadRepo, logger)
	analyticsService := services.NewAnalyticsService(propertyRepo, leadRepo, logger)
	reportService := services.NewReportService(reportGenerator, propertyRepo, leadRepo, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
	}

	deps := httpserver.ServerDeps{
		AuthService:        authService,
		UserService:        userService,
		PropertyService:    propertyService,
		LeadService:        leadService,
		BookingService:     bookingService,
		AnalyticsService:   analyticsService,
		ReportService:      reportService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     healthCheckers,
	}

	server := httpserver.NewServer(serverConfig, &cfg.RateLimit, &cfg.Maps, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
