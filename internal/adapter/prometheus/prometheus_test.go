package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusAdapter_RecordStockAdjustment(t *testing.T) {
	p := NewPrometheusAdapterWith(prometheus.NewRegistry())

	p.RecordStockAdjustment(domain.StockChangeSale, true)
	p.RecordStockAdjustment(domain.StockChangeSale, true)
	p.RecordStockAdjustment(domain.StockChangePurchase, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(p.stockAdjustments.WithLabelValues("sale", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.stockAdjustments.WithLabelValues("purchase", "false")))
}

func TestPrometheusAdapter_RecordMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := NewPrometheusAdapterWith(prometheus.NewRegistry())

	r := gin.New()
	r.GET("/api/bikes/:id", func(c *gin.Context) {
		start := time.Now()
		c.Status(http.StatusNotFound)
		p.RecordMetrics(c, start)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bikes/123", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(p.requests.WithLabelValues("GET", "/api/bikes/:id", "404")))
}
