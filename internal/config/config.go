package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shenikar/geo_sector_dispatch/internal/models"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"

	DefaultSnapshotKey    = "notifications"
	DefaultPersistTimeout = 5 * time.Second

	// Варанаси: точка по умолчанию, если клиент не передал координаты
	DefaultLatitude  = 25.3176
	DefaultLongitude = 82.9739
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Boundary dataset
	BoundaryFile             string `env:"BOUNDARY_FILE"`
	BoundarySectorProperty   string `env:"BOUNDARY_SECTOR_PROPERTY" envDefault:"Sector"`
	BoundaryProviderProperty string `env:"BOUNDARY_PROVIDER_PROPERTY" envDefault:"Provider"`
	BoundaryPermissive       bool   `env:"BOUNDARY_PERMISSIVE" envDefault:"false"`

	// Snapshot storage
	StorageBackend string        `env:"STORAGE_BACKEND" envDefault:"redis"`
	SnapshotKey    string        `env:"SNAPSHOT_KEY" envDefault:"notifications"`
	PersistTimeout time.Duration `env:"PERSIST_TIMEOUT" envDefault:"5s"`
	DatabaseURL    string        `env:"DATABASE_URL"`
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"notifications.db"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Координаты для загрузок без геолокации
	DefaultLatitude  float64 `env:"DEFAULT_LATITUDE" envDefault:"25.3176"`
	DefaultLongitude float64 `env:"DEFAULT_LONGITUDE" envDefault:"82.9739"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:                 getEnv("HTTP_PORT", "8080"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		LogFormat:                getEnv("LOG_FORMAT", "json"),
		BoundaryFile:             os.Getenv("BOUNDARY_FILE"),
		BoundarySectorProperty:   getEnv("BOUNDARY_SECTOR_PROPERTY", "Sector"),
		BoundaryProviderProperty: getEnv("BOUNDARY_PROVIDER_PROPERTY", "Provider"),
		BoundaryPermissive:       getEnvAsBool("BOUNDARY_PERMISSIVE", false),
		StorageBackend:           strings.ToLower(getEnv("STORAGE_BACKEND", StorageRedis)),
		SnapshotKey:              getEnv("SNAPSHOT_KEY", DefaultSnapshotKey),
		PersistTimeout:           getEnvAsDuration("PERSIST_TIMEOUT", DefaultPersistTimeout),
		DatabaseURL:              os.Getenv("DATABASE_URL"),
		SQLitePath:               getEnv("SQLITE_PATH", "notifications.db"),
		RedisAddr:                getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:                os.Getenv("REDIS_PASSWORD"),
		RedisDB:                  getEnvAsInt("REDIS_DB", 0),
		DefaultLatitude:          getEnvAsFloat("DEFAULT_LATITUDE", DefaultLatitude),
		DefaultLongitude:         getEnvAsFloat("DEFAULT_LONGITUDE", DefaultLongitude),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	if c.BoundaryFile == "" {
		return fmt.Errorf("BOUNDARY_FILE environment variable is required")
	}

	switch c.StorageBackend {
	case StorageRedis, StorageSQLite:
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for %s storage", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_BACKEND %q", c.StorageBackend)
	}

	if !(models.GeoPoint{Latitude: c.DefaultLatitude, Longitude: c.DefaultLongitude}).Valid() {
		return fmt.Errorf("default location %v,%v is out of range", c.DefaultLatitude, c.DefaultLongitude)
	}
	if c.PersistTimeout <= 0 {
		return fmt.Errorf("PERSIST_TIMEOUT must be positive")
	}
	return nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
