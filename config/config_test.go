package config

import (
	"testing"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Postgres: &postgres.DBConn{}}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Persistence)
	assert.Equal(t, defaultBatchFetchSize, cfg.Persistence.BatchFetchSize)
	assert.Empty(t, cfg.Postgres.Replicas)
}

func TestApplyDefaults_ReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	cfg := &Config{Postgres: &postgres.DBConn{}}
	applyDefaults(cfg)

	require.Len(t, cfg.Postgres.Replicas, 1)
	assert.Equal(t, "replica-0", cfg.Postgres.Replicas[0].Host)
	assert.Equal(t, "reader", cfg.Postgres.Replicas[0].UserName)
}

func TestApplyDefaults_WithoutPostgres(t *testing.T) {
	cfg := &Config{Persistence: &PersistenceConfig{BatchFetchSize: 7}}

	applyDefaults(cfg)

	assert.Nil(t, cfg.Postgres)
	assert.Equal(t, 7, cfg.Persistence.BatchFetchSize)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "empty", cfg: Config{}},
		{name: "local pubsub", cfg: Config{PubSub: &PubSubConfig{Provider: "local"}}},
		{name: "google pubsub", cfg: Config{PubSub: &PubSubConfig{Provider: "google", ProjectID: "p", TopicID: "orders"}}},
		{name: "google pubsub without topic", cfg: Config{PubSub: &PubSubConfig{Provider: "google", ProjectID: "p"}}, wantErr: true},
		{name: "unknown pubsub", cfg: Config{PubSub: &PubSubConfig{Provider: "kafka"}}, wantErr: true},
		{name: "otlp tracing", cfg: Config{Tracing: &TracingConfig{Enabled: true, Exporter: "otlp"}}},
		{name: "unknown exporter", cfg: Config{Tracing: &TracingConfig{Enabled: true, Exporter: "zipkin"}}, wantErr: true},
		{name: "disabled tracing ignores exporter", cfg: Config{Tracing: &TracingConfig{Exporter: "zipkin"}}},
		{name: "negative ttl", cfg: Config{Redis: &RedisConfig{StatusTTL: -time.Second}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
