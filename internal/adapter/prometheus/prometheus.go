package prometheus

import (
	"strconv"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusAdapter struct {
	requests         *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	stockAdjustments *prometheus.CounterVec
}

// NewPrometheusAdapter registers on the default registry served at /metrics.
func NewPrometheusAdapter() *PrometheusAdapter {
	return NewPrometheusAdapterWith(prometheus.DefaultRegisterer)
}

func NewPrometheusAdapterWith(reg prometheus.Registerer) *PrometheusAdapter {
	factory := promauto.With(reg)
	return &PrometheusAdapter{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		stockAdjustments: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "stock_adjustments_total",
			Help: "Stock adjustments triggered by sales and purchases",
		}, []string{"kind", "applied"}),
	}
}

func (p *PrometheusAdapter) RecordMetrics(c *gin.Context, start time.Time) {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	method := c.Request.Method
	status := strconv.Itoa(c.Writer.Status())

	p.requests.WithLabelValues(method, route, status).Inc()
	p.duration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

func (p *PrometheusAdapter) RecordStockAdjustment(kind domain.StockChangeKind, applied bool) {
	p.stockAdjustments.WithLabelValues(string(kind), strconv.FormatBool(applied)).Inc()
}
