package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Dias221467/Mongo_Exercises/pkg/logger"
	"github.com/joho/godotenv"
)

const (
	DriverMongo = "mongo"
	DriverBolt  = "bolt"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port string

	MongoURI         string
	MongoTimeout     time.Duration
	MongoMaxPoolSize uint64
	ConfessionDB     string
	BucketListDB     string
	ExpenseDB        string

	StoreDriver string
	BoltPath    string

	LogLevel  string
	LogFormat string

	CORSOrigins   []string
	StatsSchedule string

	TracingEnabled bool
	ServiceName    string
	OTLPProtocol   string
}

// LoadConfig loads variables from .env (if present) and the process environment.
// Real environment variables take precedence over the file.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Debug("No .env file found, using environment variables")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		MongoURI:         getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoTimeout:     time.Duration(getEnvInt("MONGO_TIMEOUT_SEC", 10)) * time.Second,
		MongoMaxPoolSize: uint64(getEnvInt("MONGO_MAX_POOL_SIZE", 100)),
		ConfessionDB:     getEnv("CONFESSION_DB", "confession"),
		BucketListDB:     getEnv("BUCKET_LIST_DB", "bucketListDB"),
		ExpenseDB:        getEnv("EXPENSE_DB", "expenseDB"),
		StoreDriver:      strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
		BoltPath:         getEnv("BOLT_PATH", "./data/exercises.db"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		CORSOrigins:      getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		StatsSchedule:    getEnv("STATS_SCHEDULE", "@every 5m"),
		TracingEnabled:   getEnvBool("OTEL_ENABLED", false),
		ServiceName:      getEnv("OTEL_SERVICE_NAME", "mongo-exercises"),
		OTLPProtocol:     getEnv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc"),
	}
}

// Validate reports configuration that cannot start a server.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required for the %s driver", DriverMongo)
		}
	case DriverBolt:
		if c.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH is required for the %s driver", DriverBolt)
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil && i > 0 {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
