package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	EventBus EventBusConfig
	Storage  StorageConfig
	Ingest   IngestConfig
	Query    QueryConfig
	Throttle ThrottleConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type WorkerConfig struct {
	PoolSize      int
	MaxRetries    int
	RetryDelay    time.Duration
	RetryMaxDelay time.Duration
	BatchTimeout  time.Duration
}

type LoggingConfig struct {
	Level string
}

type EventBusConfig struct {
	ChannelBufferSize int
}

const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
)

type StorageConfig struct {
	Driver      string
	SQLitePath  string
	SQLiteBusy  time.Duration
	PostgresDSN string
	AutoMigrate bool
}

type IngestConfig struct {
	UTCOffsetHours int
	MaxFileSizeMB  int
}

func (c IngestConfig) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

type QueryConfig struct {
	DefaultPageSize int
	MaxPageSize     int
}

type ThrottleConfig struct {
	Enabled      bool
	Interval     time.Duration
	Burst        int
	ClientHeader string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Worker: WorkerConfig{
			PoolSize:      getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries:    getIntEnv("MAX_RETRIES", 3),
			RetryDelay:    getDurationEnv("RETRY_BASE_DELAY", 500*time.Millisecond),
			RetryMaxDelay: getDurationEnv("RETRY_MAX_DELAY", 30*time.Second),
			BatchTimeout:  getDurationEnv("BATCH_PROCESS_TIMEOUT", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		EventBus: EventBusConfig{
			ChannelBufferSize: getIntEnv("EVENT_CHANNEL_BUFFER_SIZE", 100),
		},
		Storage: StorageConfig{
			Driver:      strings.ToLower(getEnv("STORAGE_DRIVER", StorageDriverSQLite)),
			SQLitePath:  getEnv("SQLITE_PATH", "data/cnab.db"),
			SQLiteBusy:  getDurationEnv("SQLITE_BUSY_TIMEOUT", 5*time.Second),
			PostgresDSN: getEnv("DB_DSN", ""),
			AutoMigrate: getBoolEnv("DB_AUTO_MIGRATE", true),
		},
		Ingest: IngestConfig{
			UTCOffsetHours: getIntEnv("CNAB_UTC_OFFSET_HOURS", -3),
			MaxFileSizeMB:  getIntEnv("CNAB_MAX_FILE_SIZE_MB", 5),
		},
		Query: QueryConfig{
			DefaultPageSize: getIntEnv("QUERY_DEFAULT_PAGE_SIZE", 10),
			MaxPageSize:     getIntEnv("QUERY_MAX_PAGE_SIZE", 100),
		},
		Throttle: ThrottleConfig{
			Enabled:      getBoolEnv("THROTTLE_ENABLED", true),
			Interval:     getDurationEnv("THROTTLE_INTERVAL", 5*time.Second),
			Burst:        getIntEnv("THROTTLE_BURST", 1),
			ClientHeader: getEnv("THROTTLE_CLIENT_HEADER", "X-Client-Id"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getBoolEnv(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid bool for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
