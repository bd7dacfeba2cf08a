package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Durable storage configuration
	Storage StorageConfig

	// Image encoding configuration
	Image ImageConfig

	// Owner authentication configuration
	Auth AuthConfig

	// CORS configuration
	CORS CORSConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	MaxUploadBytes    int64
}

// Storage drivers
const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// StorageConfig holds the durable key-value slot configuration
type StorageConfig struct {
	Driver  string
	Key     string
	DataDir string

	Postgres PostgresConfig
	Redis    RedisConfig
}

// PostgresConfig holds database-related configuration
type PostgresConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	Table       string
	MaxConns    int32
	MinConns    int32
	MaxLifetime time.Duration
	ConnTimeout time.Duration
}

// RedisConfig holds redis-related configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	UseTLS    bool
	KeyPrefix string
}

// ImageConfig holds image encoder configuration
type ImageConfig struct {
	AssetsDir    string
	FetchTimeout time.Duration
	MaxBytes     int64
	MaxDimension int
	JPEGQuality  int
}

// AuthConfig holds owner JWT configuration
type AuthConfig struct {
	Secret            string
	AccessTokenTTL    time.Duration
	OwnerPasswordHash string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level       string
	Development bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file
	if err := godotenv.Load("../.env"); err != nil {
		// Try loading from current directory if not found in parent
		if err := godotenv.Load(".env"); err != nil {
			log.Printf("Warning: .env file not found: %v", err)
		}
	}

	return FromEnv()
}

// FromEnv builds the configuration from the process environment only
func FromEnv() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:              getEnv("SERVER_PORT", "8080"),
			ReadHeaderTimeout: getDurationEnv("SERVER_READ_HEADER_TIMEOUT", 5*time.Second),
			ReadTimeout:       getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:      getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:       getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:   getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 5*time.Second),
			MaxUploadBytes:    getInt64Env("SERVER_MAX_UPLOAD_BYTES", 10<<20),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(getEnv("STORAGE_DRIVER", DriverFile)),
			Key:     getEnv("STORAGE_KEY", "vcard-data"),
			DataDir: getEnv("STORAGE_DATA_DIR", "./data"),
			Postgres: PostgresConfig{
				Host:        getEnv("DB_HOST", "localhost"),
				Port:        getEnv("DB_PORT", "5432"),
				User:        getEnv("DB_USER", "postgres"),
				Password:    getEnv("DB_PASSWORD", ""),
				Name:        getEnv("DB_NAME", "postgres"),
				SSLMode:     getEnv("DB_SSLMODE", "disable"),
				Table:       getEnv("DB_TABLE", "vcard_kv"),
				MaxConns:    getInt32Env("DB_MAX_CONNS", 5),
				MinConns:    getInt32Env("DB_MIN_CONNS", 0),
				MaxLifetime: getDurationEnv("DB_MAX_LIFETIME", time.Hour),
				ConnTimeout: getDurationEnv("DB_CONN_TIMEOUT", 10*time.Second),
			},
			Redis: RedisConfig{
				Addr:      getEnv("REDIS_ADDR", "localhost:6379"),
				Password:  getEnv("REDIS_PASSWORD", ""),
				DB:        int(getInt32Env("REDIS_DB", 0)),
				UseTLS:    getBoolEnv("REDIS_USE_TLS", false),
				KeyPrefix: getEnv("REDIS_KEY_PREFIX", "vcard:"),
			},
		},
		Image: ImageConfig{
			AssetsDir:    getEnv("ASSETS_DIR", "./assets"),
			FetchTimeout: getDurationEnv("IMAGE_FETCH_TIMEOUT", 15*time.Second),
			MaxBytes:     getInt64Env("IMAGE_MAX_BYTES", 8<<20),
			MaxDimension: int(getInt32Env("IMAGE_MAX_DIMENSION", 0)),
			JPEGQuality:  int(getInt32Env("IMAGE_JPEG_QUALITY", 85)),
		},
		Auth: AuthConfig{
			Secret:            getEnv("JWT_SECRET", ""),
			AccessTokenTTL:    getDurationEnv("JWT_ACCESS_TTL", 24*time.Hour),
			OwnerPasswordHash: getEnv("OWNER_PASSWORD_HASH", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods:   getStringSliceEnv("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"}),
			AllowedHeaders:   getStringSliceEnv("CORS_ALLOWED_HEADERS", []string{"*"}),
			AllowCredentials: getBoolEnv("CORS_ALLOW_CREDENTIALS", true),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getBoolEnv("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile:
		if c.Storage.DataDir == "" {
			return fmt.Errorf("STORAGE_DATA_DIR is required for the file driver")
		}
	case DriverPostgres:
		if c.Storage.Postgres.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	case DriverRedis:
		if c.Storage.Redis.Addr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Storage.Key == "" {
		return fmt.Errorf("STORAGE_KEY must not be empty")
	}

	if c.Image.JPEGQuality < 1 || c.Image.JPEGQuality > 100 {
		return fmt.Errorf("IMAGE_JPEG_QUALITY must be between 1 and 100")
	}

	if !c.IsAuthConfigured() {
		log.Println("Warning: JWT_SECRET or OWNER_PASSWORD_HASH not configured. Profile writes are not protected.")
	}

	return nil
}

// GetDSN returns the database connection string
func (c *Config) GetDSN() string {
	db := c.Storage.Postgres
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&connect_timeout=%d",
		db.User,
		db.Password,
		db.Host,
		db.Port,
		db.Name,
		db.SSLMode,
		int(db.ConnTimeout.Seconds()),
	)
}

// IsAuthConfigured checks if owner authentication is enabled
func (c *Config) IsAuthConfigured() bool {
	return c.Auth.Secret != "" && c.Auth.OwnerPasswordHash != ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt32Env(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intValue)
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
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

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := []string{}
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts
		}
	}
	return defaultValue
}
