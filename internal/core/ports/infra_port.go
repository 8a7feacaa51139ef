package ports

import (
	"context"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type LoggerPort interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type CachePort interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
}

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordStockAdjustment(kind domain.StockChangeKind, applied bool)
}

type EventPublisherPort interface {
	PublishStockAdjusted(ctx context.Context, adj domain.StockAdjustment) error
}

type Clock interface {
	Now() time.Time
}
