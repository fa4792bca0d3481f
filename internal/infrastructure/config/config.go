package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

var (
	config     *Config
	configOnce sync.Once
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config stores all configuration of the application
type Config struct {
	// Environment type
	EnvType string `env:"ENV_TYPE" envDefault:"LOCAL"`

	// Database
	DBDriver        string `env:"DB_DRIVER" envDefault:"mysql"`
	DBHost          string `env:"DB_HOST" envDefault:"localhost"`
	DBPort          string `env:"DB_PORT" envDefault:"3306"`
	DBUser          string `env:"DB_USER" envDefault:"root"`
	DBPassword      string `env:"DB_PASSWORD"`
	DBName          string `env:"DB_NAME" envDefault:"telefonos"`
	DBDSN           string `env:"DB_DSN"`                                // overrides the fields above when set
	DBMigrationMode string `env:"DB_MIGRATION_MODE" envDefault:"auto"` // "auto" or "drop"

	// Server
	ServerPort    string `env:"SERVER_PORT" envDefault:"8080"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`

	// Redis
	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Remote user service, the local database is used when empty
	UserServiceURL string        `env:"USER_SERVICE_URL"`
	UserCacheTTL   time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`

	// HTTP middleware
	CacheTTL           time.Duration `env:"CACHE_TTL" envDefault:"30s"`
	RateLimitRPS       float64       `env:"RATE_LIMIT_RPS" envDefault:"30"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"50"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// JWT Authentication, write routes are open when empty
	JWTSecretKey string `env:"JWT_SECRET_KEY"`

	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogDir   string `env:"LOG_DIR" envDefault:"logs"`
}

// Load parses the configuration from the environment
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	cfg.EnvType = strings.ToUpper(cfg.EnvType)
	cfg.DBDriver = strings.ToLower(cfg.DBDriver)

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, errors.Errorf("unsupported DB_DRIVER '%s'", cfg.DBDriver)
	}

	switch cfg.DBMigrationMode {
	case "auto", "drop":
	default:
		return nil, errors.Errorf("unsupported DB_MIGRATION_MODE '%s'", cfg.DBMigrationMode)
	}

	cfg.PublicBaseURL = strings.TrimRight(cfg.PublicBaseURL, "/")
	cfg.UserServiceURL = strings.TrimRight(cfg.UserServiceURL, "/")

	return &cfg, nil
}

// GetConfig returns the application configuration as a singleton
func GetConfig() *Config {
	configOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			panic(fmt.Sprintf("invalid configuration: %+v", err))
		}
		config = cfg
	})
	return config
}

// GetDSN returns the database connection string for the configured driver
func (c *Config) GetDSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}

	switch c.DBDriver {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
	case DriverSQLite:
		return c.DBName + ".sqlite"
	default:
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true"
	}
}

// GetRedisAddr returns the Redis address, empty when Redis is not configured
func (c *Config) GetRedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
