package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Email     EmailConfig
	OpenAI    OpenAIConfig
	Maps      MapsConfig
	Recaptcha RecaptchaConfig
	Log       LogConfig
}

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

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type JWTConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

// RateLimitPolicy is one named (max requests, window) pair.
type RateLimitPolicy struct {
	MaxRequests int
	Window      time.Duration
}

type RateLimitConfig struct {
	KeyPrefix string
	// Sweep settings for the in-memory fallback store
	CleanupInterval time.Duration
	Retention       time.Duration

	Default        RateLimitPolicy
	Login          RateLimitPolicy
	Register       RateLimitPolicy
	LeadSubmission RateLimitPolicy
	ForgotPassword RateLimitPolicy
}

type EmailConfig struct {
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	LeadsEmail     string
	CompanyName    string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type MapsConfig struct {
	GoogleAPIKey string
}

type RecaptchaConfig struct {
	Enabled   bool
	SecretKey string
	MinScore  float64
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getSliceEnv("ALLOWED_ORIGINS", []string{"*"}),
			Environment:    getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			DBName:          getEnv("DB_NAME", "indohomz"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute),
			ConnMaxIdleTime: getDurationEnv("DB_CONN_MAX_IDLE_TIME", 5*time.Minute),
		},
		JWT: JWTConfig{
			Secret:          getEnvRequired("JWT_SECRET"),
			AccessTokenTTL:  getDurationEnv("JWT_ACCESS_TTL", 24*time.Hour),
			RefreshTokenTTL: getDurationEnv("JWT_REFRESH_TTL", 7*24*time.Hour),
		},
		Redis: RedisConfig{
			Enabled:      getBoolEnv("REDIS_ENABLED", false),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		RateLimit: RateLimitConfig{
			KeyPrefix:       getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit"),
			CleanupInterval: getDurationEnv("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
			Retention:       getDurationEnv("RATE_LIMIT_RETENTION", time.Hour),
			Default: RateLimitPolicy{
				MaxRequests: getIntEnv("RATE_LIMIT_DEFAULT_MAX", 100),
				Window:      getDurationEnv("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
			},
			Login: RateLimitPolicy{
				MaxRequests: getIntEnv("RATE_LIMIT_LOGIN_MAX", 10),
				Window:      getDurationEnv("RATE_LIMIT_LOGIN_WINDOW", 15*time.Minute),
			},
			Register: RateLimitPolicy{
				MaxRequests: getIntEnv("RATE_LIMIT_REGISTER_MAX", 5),
				Window:      getDurationEnv("RATE_LIMIT_REGISTER_WINDOW", time.Hour),
			},
			LeadSubmission: RateLimitPolicy{
				MaxRequests: getIntEnv("RATE_LIMIT_LEAD_MAX", 5),
				Window:      getDurationEnv("RATE_LIMIT_LEAD_WINDOW", time.Hour),
			},
			ForgotPassword: RateLimitPolicy{
				MaxRequests: getIntEnv("RATE_LIMIT_FORGOT_PASSWORD_MAX", 3),
				Window:      getDurationEnv("RATE_LIMIT_FORGOT_PASSWORD_WINDOW", time.Hour),
			},
		},
		Email: EmailConfig{
			SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:      getEnv("FROM_EMAIL", "noreply@indohomz.com"),
			FromName:       getEnv("FROM_NAME", "IndoHomz"),
			LeadsEmail:     getEnv("LEADS_EMAIL", "leads@indohomz.com"),
			CompanyName:    getEnv("COMPANY_NAME", "IndoHomz"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  getEnv("OPENAI_API_KEY", ""),
			Model:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			BaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Timeout: getDurationEnv("OPENAI_TIMEOUT", 60*time.Second),
		},
		Maps: MapsConfig{
			GoogleAPIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
		Recaptcha: RecaptchaConfig{
			Enabled:   getBoolEnv("RECAPTCHA_ENABLED", false),
			SecretKey: getEnv("RECAPTCHA_SECRET_KEY", ""),
			MinScore:  getFloatEnv("RECAPTCHA_MIN_SCORE", 0.5),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Build database DSN
	cfg.Database.DSN = fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.DBName,
		cfg.Database.SSLMode,
	)

	if err := cfg.RateLimit.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects zero or negative limits at startup; a bad policy is a
// configuration error, not something to discover per request.
func (c *RateLimitConfig) Validate() error {
	policies := map[string]RateLimitPolicy{
		"default":         c.Default,
		"login":           c.Login,
		"register":        c.Register,
		"lead_submission": c.LeadSubmission,
		"forgot_password": c.ForgotPassword,
	}
	for name, p := range policies {
		if p.MaxRequests <= 0 {
			return fmt.Errorf("rate limit policy %s: max requests must be positive", name)
		}
		if p.Window <= 0 {
			return fmt.Errorf("rate limit policy %s: window must be positive", name)
		}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
