package app

import (
	"fmt"
	"time"

	"github.com/fekuna/omnipos-kit-inventory/config"
	"github.com/fekuna/omnipos-kit-inventory/pkg/broker"
	"github.com/fekuna/omnipos-kit-inventory/pkg/cache"
	"github.com/fekuna/omnipos-kit-inventory/pkg/database/postgres"
	"github.com/fekuna/omnipos-kit-inventory/pkg/lock"
	"github.com/fekuna/omnipos-kit-inventory/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Infra owns the external connections opened for a process.
type Infra struct {
	Deps
	Consumer    *broker.KafkaConsumer
	DeadLetters *broker.KafkaProducer

	closers []func() error
}

// Connect opens the backends cfg asks for. Close must be called even when an
// error is returned.
func Connect(cfg *config.Config, reg prometheus.Registerer, log logger.ZapLogger) (*Infra, error) {
	inf := &Infra{Deps: Deps{Registerer: reg}}

	if cfg.Store.Driver == config.StoreDriverPostgres {
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			return inf, fmt.Errorf("connect postgres: %w", err)
		}
		inf.DB = db
		inf.closers = append(inf.closers, db.Close)
		log.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
	}

	switch cfg.Lock.Driver {
	case config.LockDriverRedis:
		redisClient, err := cache.NewRedisClient(&cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return inf, fmt.Errorf("connect redis: %w", err)
		}
		inf.closers = append(inf.closers, redisClient.Close)
		inf.Locker = lock.NewRedisLocker(redisClient, lock.RedisLockerConfig{
			Prefix:     "kit-inventory:lock:",
			TTL:        cfg.Lock.TTL,
			Retries:    cfg.Lock.Retries,
			RetryDelay: cfg.Lock.RetryDelay,
		})
		log.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	default:
		inf.Locker = lock.NewLocalLocker(cfg.Lock.LocalWait)
	}

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.EventsTopic,
		})
		inf.Publisher = producer
		inf.closers = append(inf.closers, producer.Close)

		inf.Consumer = broker.NewConsumer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.ConsumptionTopic,
			GroupID: cfg.Kafka.GroupID,
		})
		inf.closers = append(inf.closers, inf.Consumer.Close)

		inf.DeadLetters = broker.NewProducer(&broker.Config{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.DeadLetterTopic,
		})
		inf.closers = append(inf.closers, inf.DeadLetters.Close)
		log.Info("Kafka configured",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("events_topic", cfg.Kafka.EventsTopic),
			zap.String("consumption_topic", cfg.Kafka.ConsumptionTopic),
			zap.String("dead_letter_topic", cfg.Kafka.DeadLetterTopic))
	}
	return inf, nil
}

// Close releases connections in reverse order of opening.
func (i *Infra) Close(log logger.ZapLogger) {
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](); err != nil {
			log.Warn("failed to close connection", zap.Error(err))
		}
	}
}
