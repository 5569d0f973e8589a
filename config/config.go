package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the platform binaries.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Worker   WorkerConfig
	LogLevel string
}

// ServerConfig holds API server configuration.
type ServerConfig struct {
	Port        string
	EnableXRay  bool
	CORSOrigins string
}

// PostgresConfig holds connection settings for the invocation store.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

// RedisConfig holds connection settings for the execution queue.
type RedisConfig struct {
	Host string
	Port int
}

// StorageConfig selects the artifact storage backend.
type StorageConfig struct {
	// Type is "local" or "s3".
	Type string
	// PathOrBucket is a directory for local storage, a bucket name for s3.
	PathOrBucket string
}

// WorkerConfig holds settings for the execution worker.
type WorkerConfig struct {
	// BinDir is the directory containing the built-in function binaries.
	BinDir string
	// ExecTimeout is the hard limit on a single function execution.
	ExecTimeout time.Duration
	// PollTimeout is how long BRPOP blocks before looping.
	PollTimeout time.Duration
}

// Load reads configuration from the environment with defaults. A .env file
// in the working directory is loaded first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			EnableXRay:  getBoolEnv("ENABLE_XRAY", false),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getIntEnv("DB_PORT", 5432),
			User:     getEnv("DB_USER", "funcbox"),
			Password: getEnv("DB_PASSWORD", "funcbox"),
			DBName:   getEnv("DB_NAME", "funcbox"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getIntEnv("REDIS_PORT", 6379),
		},
		Storage: StorageConfig{
			Type:         getEnv("STORAGE_TYPE", "local"),
			PathOrBucket: getEnv("STORAGE_PATH", "/data/artifacts"),
		},
		Worker: WorkerConfig{
			BinDir:      getEnv("FUNCTIONS_BIN_DIR", "./bin"),
			ExecTimeout: getDurationEnv("EXEC_TIMEOUT", 30*time.Second),
			PollTimeout: getDurationEnv("QUEUE_POLL_TIMEOUT", 5*time.Second),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
