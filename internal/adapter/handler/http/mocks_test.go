package http

import (
	"context"
	"testing"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/config"
	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

// =====================
// service mocks
// =====================

type BikeServiceMock struct{ mock.Mock }

var _ ports.BikeService = (*BikeServiceMock)(nil)

func (m *BikeServiceMock) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	args := m.Called(ctx, bike)
	b, _ := args.Get(0).(*domain.Bike)
	return b, args.Error(1)
}

func (m *BikeServiceMock) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	args := m.Called(ctx, bikeID)
	b, _ := args.Get(0).(*domain.Bike)
	return b, args.Error(1)
}

func (m *BikeServiceMock) ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error) {
	args := m.Called(ctx, filter)
	bikes, _ := args.Get(0).([]*domain.Bike)
	return bikes, args.Error(1)
}

func (m *BikeServiceMock) UpdateBike(ctx context.Context, bikeID string, patch domain.BikePatch) (*domain.Bike, error) {
	args := m.Called(ctx, bikeID, patch)
	b, _ := args.Get(0).(*domain.Bike)
	return b, args.Error(1)
}

func (m *BikeServiceMock) DeleteBike(ctx context.Context, bikeID string) error {
	args := m.Called(ctx, bikeID)
	return args.Error(0)
}

type SaleServiceMock struct{ mock.Mock }

var _ ports.SaleService = (*SaleServiceMock)(nil)

func (m *SaleServiceMock) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.SaleView, *domain.StockAdjustment, error) {
	args := m.Called(ctx, sale)
	v, _ := args.Get(0).(*domain.SaleView)
	adj, _ := args.Get(1).(*domain.StockAdjustment)
	return v, adj, args.Error(2)
}

func (m *SaleServiceMock) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleView, error) {
	args := m.Called(ctx, saleID)
	v, _ := args.Get(0).(*domain.SaleView)
	return v, args.Error(1)
}

func (m *SaleServiceMock) ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.SaleView, error) {
	args := m.Called(ctx, opts)
	v, _ := args.Get(0).([]*domain.SaleView)
	return v, args.Error(1)
}

func (m *SaleServiceMock) UpdateSale(ctx context.Context, saleID string, patch domain.SalePatch) (*domain.SaleView, error) {
	args := m.Called(ctx, saleID, patch)
	v, _ := args.Get(0).(*domain.SaleView)
	return v, args.Error(1)
}

func (m *SaleServiceMock) DeleteSale(ctx context.Context, saleID string) error {
	args := m.Called(ctx, saleID)
	return args.Error(0)
}

type ServiceOrderServiceMock struct{ mock.Mock }

var _ ports.ServiceOrderService = (*ServiceOrderServiceMock)(nil)

func (m *ServiceOrderServiceMock) CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrderView, error) {
	args := m.Called(ctx, order)
	v, _ := args.Get(0).(*domain.ServiceOrderView)
	return v, args.Error(1)
}

func (m *ServiceOrderServiceMock) GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrderView, error) {
	args := m.Called(ctx, orderID)
	v, _ := args.Get(0).(*domain.ServiceOrderView)
	return v, args.Error(1)
}

func (m *ServiceOrderServiceMock) ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrderView, error) {
	args := m.Called(ctx, filter)
	v, _ := args.Get(0).([]*domain.ServiceOrderView)
	return v, args.Error(1)
}

func (m *ServiceOrderServiceMock) UpdateServiceOrder(ctx context.Context, orderID string, patch domain.ServiceOrderPatch) (*domain.ServiceOrderView, error) {
	args := m.Called(ctx, orderID, patch)
	v, _ := args.Get(0).(*domain.ServiceOrderView)
	return v, args.Error(1)
}

func (m *ServiceOrderServiceMock) DeleteServiceOrder(ctx context.Context, orderID string) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type DashboardServiceMock struct{ mock.Mock }

var _ ports.DashboardService = (*DashboardServiceMock)(nil)

func (m *DashboardServiceMock) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.DashboardStats)
	return s, args.Error(1)
}

func (m *DashboardServiceMock) LowStockBikes(ctx context.Context) ([]*domain.Bike, error) {
	args := m.Called(ctx)
	b, _ := args.Get(0).([]*domain.Bike)
	return b, args.Error(1)
}

func (m *DashboardServiceMock) RecentSales(ctx context.Context) ([]*domain.SaleView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*domain.SaleView)
	return v, args.Error(1)
}

func (m *DashboardServiceMock) PendingServices(ctx context.Context) ([]*domain.ServiceOrderView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]*domain.ServiceOrderView)
	return v, args.Error(1)
}

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) RecordMetrics(c *gin.Context, start time.Time) {
	m.Called(c.FullPath(), c.Writer.Status())
}

func (m *MetricsMock) RecordStockAdjustment(kind domain.StockChangeKind, applied bool) {
	m.Called(kind, applied)
}

// =====================
// helpers
// =====================

type testServer struct {
	engine    *gin.Engine
	bikes     *BikeServiceMock
	sales     *SaleServiceMock
	orders    *ServiceOrderServiceMock
	dashboard *DashboardServiceMock
	metrics   *MetricsMock
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := nopLogger{}
	ts := &testServer{
		bikes:     new(BikeServiceMock),
		sales:     new(SaleServiceMock),
		orders:    new(ServiceOrderServiceMock),
		dashboard: new(DashboardServiceMock),
		metrics:   new(MetricsMock),
	}
	ts.metrics.On("RecordMetrics", mock.Anything, mock.Anything).Return()

	router, err := NewRouter(
		&config.HTTP{Env: "test", AllowedOrigins: "*"},
		NewJWTTokenService(testSecret, logger),
		ts.metrics,
		logger,
		Handlers{
			Bike:      NewBikeHandler(ts.bikes, logger),
			Customer:  NewCustomerHandler(nil, logger),
			Supplier:  NewSupplierHandler(nil, logger),
			Employee:  NewEmployeeHandler(nil, logger),
			Sale:      NewSaleHandler(ts.sales, logger),
			Purchase:  NewPurchaseHandler(nil, logger),
			Service:   NewServiceOrderHandler(ts.orders, logger),
			Dashboard: NewDashboardHandler(ts.dashboard, logger),
		},
	)
	require.NoError(t, err)
	ts.engine = router.Engine()
	return ts
}

func mustMakeToken(t *testing.T, secret string, role string, method jwt.SigningMethod) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":      uuid.NewString(),
		"user_id": uuid.NewString(),
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func staffToken(t *testing.T) string {
	return mustMakeToken(t, testSecret, string(domain.Staff), jwt.SigningMethodHS256)
}

func adminToken(t *testing.T) string {
	return mustMakeToken(t, testSecret, string(domain.Admin), jwt.SigningMethodHS256)
}
