package config

import (
	"time"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	URL      string
	Password string
	DB       int
}

type StorageConfig struct {
	// Key is the single key-value entry holding the product collection.
	Key string
	// InMemory switches the repository to the process-local store. The
	// cache and rate limiter still run on redis.
	InMemory bool
}

type LookupConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type HTTPConfig struct {
	Port          string
	BindInterface string
}

type LoggerConfig struct {
	Endpoint     string
	ServiceName  string
	IsProduction bool
}

type Config struct {
	Redis   RedisConfig
	Storage StorageConfig
	Lookup  LookupConfig
	HTTP    HTTPConfig
	Logger  LoggerConfig
}

func NewConfig() *Config {
	_ = godotenv.Load()
	return &Config{
		Redis: RedisConfig{
			URL:      getStringEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getStringEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Key:      getStringEnv("STORAGE_KEY", "perishable_products"),
			InMemory: getBoolEnv("STORAGE_IN_MEMORY", false),
		},
		Lookup: LookupConfig{
			BaseURL:  getStringEnv("LOOKUP_BASE_URL", "https://world.openfoodfacts.org"),
			Timeout:  time.Duration(getIntEnv("LOOKUP_TIMEOUT", 5)) * time.Second,
			CacheTTL: time.Duration(getIntEnv("LOOKUP_CACHE_TTL_HOURS", 24)) * time.Hour,
		},
		HTTP: HTTPConfig{
			Port:          getStringEnv("HTTP_PORT", "8080"),
			BindInterface: getStringEnv("HTTP_BIND_INTERFACE", "0.0.0.0"),
		},
		Logger: LoggerConfig{
			Endpoint:     getStringEnv("OTEL_ENDPOINT", "localhost:4317"),
			ServiceName:  getStringEnv("OTEL_SERVICE_NAME", "farejador"),
			IsProduction: getBoolEnv("IS_PRODUCTION", false),
		},
	}
}
