package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("DASHBOARD_LOW_STOCK_THRESHOLD", "")
	t.Setenv("DASHBOARD_RECENT_SALES_DAYS", "")
	t.Setenv("DASHBOARD_RECENT_SALES_LIMIT", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.HTTP.Env)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 5, cfg.Dashboard.LowStockThreshold)
	assert.Equal(t, 30*24*time.Hour, cfg.Dashboard.RecentSalesWindow)
	assert.Equal(t, 10, cfg.Dashboard.RecentSalesLimit)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("DASHBOARD_LOW_STOCK_THRESHOLD", "3")
	t.Setenv("DASHBOARD_RECENT_SALES_DAYS", "7")
	t.Setenv("DASHBOARD_RECENT_SALES_LIMIT", "not-a-number")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 3, cfg.Dashboard.LowStockThreshold)
	assert.Equal(t, 7*24*time.Hour, cfg.Dashboard.RecentSalesWindow)
	assert.Equal(t, 10, cfg.Dashboard.RecentSalesLimit)
}

func TestNew_RequiresTokenSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_SECRET", "")

	_, err := New()
	assert.Error(t, err)
}
