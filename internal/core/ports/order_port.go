package ports

import (
	"context"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleRepository interface {
	CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	GetSaleByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error)
	ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.Sale, error)
	UpdateSale(ctx context.Context, saleID uuid.UUID, patch domain.SalePatch) (*domain.Sale, error)
	DeleteSale(ctx context.Context, saleID uuid.UUID) error
	CountSales(ctx context.Context) (int64, error)
	// SumSalesSince sums total_amount over sales created at or after since.
	// It returns zero, never NULL, when nothing matches.
	SumSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error)
}

type SaleService interface {
	CreateSale(ctx context.Context, sale *domain.Sale) (*domain.SaleView, *domain.StockAdjustment, error)
	GetSaleByID(ctx context.Context, saleID string) (*domain.SaleView, error)
	ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.SaleView, error)
	UpdateSale(ctx context.Context, saleID string, patch domain.SalePatch) (*domain.SaleView, error)
	DeleteSale(ctx context.Context, saleID string) error
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (*domain.Purchase, error)
	ListPurchases(ctx context.Context, opts domain.ListOptions) ([]*domain.Purchase, error)
	UpdatePurchase(ctx context.Context, purchaseID uuid.UUID, patch domain.PurchasePatch) (*domain.Purchase, error)
	DeletePurchase(ctx context.Context, purchaseID uuid.UUID) error
}

type PurchaseService interface {
	CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.PurchaseView, *domain.StockAdjustment, error)
	GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseView, error)
	ListPurchases(ctx context.Context, opts domain.ListOptions) ([]*domain.PurchaseView, error)
	UpdatePurchase(ctx context.Context, purchaseID string, patch domain.PurchasePatch) (*domain.PurchaseView, error)
	DeletePurchase(ctx context.Context, purchaseID string) error
}

type ServiceOrderRepository interface {
	CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrder, error)
	GetServiceOrderByID(ctx context.Context, orderID uuid.UUID) (*domain.ServiceOrder, error)
	ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrder, error)
	UpdateServiceOrder(ctx context.Context, orderID uuid.UUID, patch domain.ServiceOrderPatch) (*domain.ServiceOrder, error)
	DeleteServiceOrder(ctx context.Context, orderID uuid.UUID) error
	CountServiceOrders(ctx context.Context) (int64, error)
}

type ServiceOrderService interface {
	CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrderView, error)
	GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrderView, error)
	ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrderView, error)
	UpdateServiceOrder(ctx context.Context, orderID string, patch domain.ServiceOrderPatch) (*domain.ServiceOrderView, error)
	DeleteServiceOrder(ctx context.Context, orderID string) error
}

type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	LowStockBikes(ctx context.Context) ([]*domain.Bike, error)
	RecentSales(ctx context.Context) ([]*domain.SaleView, error)
	PendingServices(ctx context.Context) ([]*domain.ServiceOrderView, error)
}
