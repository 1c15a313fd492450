package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"

	LockDriverLocal = "local"
	LockDriverRedis = "redis"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	Store    StoreConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Lock     LockConfig
	Kafka    KafkaConfig
	Tracing  TracingConfig
	Metrics  MetricsConfig
	Reorder  ReorderPolicyConfig
}

type ServerConfig struct {
	AppEnv   string
	GRPCPort string
}

type LoggerConfig struct {
	Level             string
	Encoding          string
	DisableCaller     bool
	DisableStacktrace bool
}

type StoreConfig struct {
	Driver string
}

type PostgresConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type LockConfig struct {
	Driver     string
	TTL        time.Duration
	Retries    int
	RetryDelay time.Duration
	// LocalWait bounds how long the in-process locker waits on a busy key.
	LocalWait time.Duration
}

type KafkaConfig struct {
	Enabled          bool
	Brokers          []string
	EventsTopic      string
	ConsumptionTopic string
	DeadLetterTopic  string
	GroupID          string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string
	URLPath  string
	Insecure bool
}

type MetricsConfig struct {
	Addr string
}

// ReorderPolicyConfig drives the threshold monitor.
type ReorderPolicyConfig struct {
	UrgentRatio          float64
	HighRatio            float64
	RestockMultiplier    float64
	AutoCancelOnRecovery bool
}

func LoadEnv() *Config {
	return &Config{
		Server: ServerConfig{
			AppEnv:   getEnv("APP_ENV", "dev"),
			GRPCPort: getEnv("GRPC_PORT", ":8083"),
		},
		Logger: LoggerConfig{
			Level:             getEnv("LOGGER_LEVEL", "debug"),
			Encoding:          getEnv("LOGGER_ENCODING", "console"),
			DisableCaller:     getEnvBool("LOGGER_DISABLE_CALLER", false),
			DisableStacktrace: getEnvBool("LOGGER_DISABLE_STACKTRACE", true),
		},
		Store: StoreConfig{
			Driver: getEnv("STORE_DRIVER", StoreDriverPostgres),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "localhost"),
			Port:            getEnv("POSTGRES_PORT", "5433"),
			User:            getEnv("POSTGRES_USER", "omnipos"),
			Password:        getEnv("POSTGRES_PASSWORD", "omnipos"),
			DBName:          getEnv("POSTGRES_DB", "omnipos_kit_inventory"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("POSTGRES_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvInt("POSTGRES_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getEnvInt("POSTGRES_CONN_MAX_LIFETIME", 300),
			ConnMaxIdleTime: getEnvInt("POSTGRES_CONN_MAX_IDLE_TIME", 60),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Lock: LockConfig{
			Driver:     getEnv("LOCK_DRIVER", LockDriverRedis),
			TTL:        getEnvDuration("LOCK_TTL", 5*time.Second),
			Retries:    getEnvInt("LOCK_RETRIES", 3),
			RetryDelay: getEnvDuration("LOCK_RETRY_DELAY", 100*time.Millisecond),
			LocalWait:  getEnvDuration("LOCK_LOCAL_WAIT", 2*time.Second),
		},
		Kafka: KafkaConfig{
			Enabled:          getEnvBool("KAFKA_ENABLED", true),
			Brokers:          getEnvSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			EventsTopic:      getEnv("KAFKA_TOPIC_INVENTORY_EVENTS", "kit-inventory.events"),
			ConsumptionTopic: getEnv("KAFKA_TOPIC_CONSUMPTION", "maintenance.workorder-consumption"),
			DeadLetterTopic:  getEnv("KAFKA_TOPIC_CONSUMPTION_DLQ", "maintenance.workorder-consumption.dlq"),
			GroupID:          getEnv("KAFKA_GROUP_INVENTORY", "kit-inventory"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnvBool("OTEL_ENABLED", false),
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			URLPath:  getEnv("OTEL_EXPORTER_OTLP_TRACES_PATH", "/v1/traces"),
			Insecure: getEnvBool("OTEL_EXPORTER_OTLP_INSECURE", true),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ":9102"),
		},
		Reorder: ReorderPolicyConfig{
			UrgentRatio:          getEnvFloat("REORDER_URGENT_RATIO", 0.25),
			HighRatio:            getEnvFloat("REORDER_HIGH_RATIO", 0.50),
			RestockMultiplier:    getEnvFloat("REORDER_RESTOCK_MULTIPLIER", 2),
			AutoCancelOnRecovery: getEnvBool("REORDER_AUTO_CANCEL_ON_RECOVERY", false),
		},
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverMemory, StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Lock.Driver {
	case LockDriverLocal, LockDriverRedis:
	default:
		return fmt.Errorf("unknown LOCK_DRIVER %q", c.Lock.Driver)
	}
	r := c.Reorder
	if r.UrgentRatio <= 0 || r.UrgentRatio > 1 || r.HighRatio <= 0 || r.HighRatio > 1 {
		return fmt.Errorf("reorder ratios must be in (0,1]: urgent=%v high=%v", r.UrgentRatio, r.HighRatio)
	}
	if r.UrgentRatio > r.HighRatio {
		return fmt.Errorf("reorder urgent ratio %v exceeds high ratio %v", r.UrgentRatio, r.HighRatio)
	}
	if r.RestockMultiplier < 1 {
		return fmt.Errorf("reorder restock multiplier must be >= 1, got %v", r.RestockMultiplier)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.Split(value, ",")
	}
	return fallback
}
