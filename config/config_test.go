package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, LockDriverRedis, cfg.Lock.Driver)
	assert.Equal(t, 0.25, cfg.Reorder.UrgentRatio)
	assert.Equal(t, 0.5, cfg.Reorder.HighRatio)
	assert.False(t, cfg.Reorder.AutoCancelOnRecovery)
	assert.Equal(t, "maintenance.workorder-consumption.dlq", cfg.Kafka.DeadLetterTopic)
	require.NoError(t, cfg.Validate())
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", StoreDriverMemory)
	t.Setenv("LOCK_DRIVER", LockDriverLocal)
	t.Setenv("LOCK_TTL", "750ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("REORDER_URGENT_RATIO", "0.1")
	t.Setenv("REORDER_AUTO_CANCEL_ON_RECOVERY", "true")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, LockDriverLocal, cfg.Lock.Driver)
	assert.Equal(t, 750*time.Millisecond, cfg.Lock.TTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 0.1, cfg.Reorder.UrgentRatio)
	assert.True(t, cfg.Reorder.AutoCancelOnRecovery)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown store", func(c *Config) { c.Store.Driver = "sqlite" }},
		{"unknown lock", func(c *Config) { c.Lock.Driver = "etcd" }},
		{"urgent above high", func(c *Config) { c.Reorder.UrgentRatio = 0.6 }},
		{"ratio out of range", func(c *Config) { c.Reorder.HighRatio = 1.5 }},
		{"zero ratio", func(c *Config) { c.Reorder.UrgentRatio = 0 }},
		{"multiplier below one", func(c *Config) { c.Reorder.RestockMultiplier = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := LoadEnv()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
