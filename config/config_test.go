package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.Equal(t, "pos-events", cfg.EventsTopic)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://backend:5000")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("SUBMIT_LOCK_TTL", "5s")
	t.Setenv("DB_PASSWORD", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:5000", cfg.BackendURL)
	assert.Equal(t, "cache:6379", cfg.RedisAddr())
	assert.Equal(t, 5*time.Second, cfg.SubmitLockTTL)
	assert.Equal(t, "host=localhost port=5432 user=pos password=secret dbname=pos sslmode=disable", cfg.PostgresDSN())
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")

	_, err := Load()
	assert.Error(t, err)
}

func TestConsumerGroup(t *testing.T) {
	tests := []struct {
		name     string
		instance string
		want     string
	}{
		{name: "explicit instance", instance: "till-2", want: "pos-svc-till-2"},
		{name: "hostname fallback", instance: "", want: "pos-svc-" + hostname(t)},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Setenv("INSTANCE_ID", testCase.instance)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, testCase.want, cfg.ConsumerGroup())
		})
	}
}

func TestNewKafkaReader_GroupPerInstance(t *testing.T) {
	first := NewKafkaReader(Config{KafkaBroker: "localhost:9092", EventsTopic: "pos-events", EventsGroup: "pos-svc", InstanceID: "till-1"})
	defer first.Close()
	second := NewKafkaReader(Config{KafkaBroker: "localhost:9092", EventsTopic: "pos-events", EventsGroup: "pos-svc", InstanceID: "till-2"})
	defer second.Close()

	assert.NotEqual(t, first.Config().GroupID, second.Config().GroupID)
}

func hostname(t *testing.T) string {
	t.Helper()
	name, err := os.Hostname()
	require.NoError(t, err)
	return name
}
