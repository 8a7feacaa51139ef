package services

import (
	"context"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"
)

const (
	DefaultLowStockThreshold = 5
	DefaultRecentSalesWindow = 30 * 24 * time.Hour
	DefaultRecentSalesLimit  = 10
)

type DashboardSettings struct {
	// LowStockThreshold: a bike is low on stock when stock < threshold.
	LowStockThreshold int
	RecentSalesWindow time.Duration
	RecentSalesLimit  int
}

func DefaultDashboardSettings() DashboardSettings {
	return DashboardSettings{
		LowStockThreshold: DefaultLowStockThreshold,
		RecentSalesWindow: DefaultRecentSalesWindow,
		RecentSalesLimit:  DefaultRecentSalesLimit,
	}
}

type DashboardService struct {
	tx        ports.TxManager
	bikeRepo  ports.BikeRepository
	saleRepo  ports.SaleRepository
	orderRepo ports.ServiceOrderRepository
	resolver  *RefResolver
	clock     ports.Clock
	logger    ports.LoggerPort
	settings  DashboardSettings
}

func NewDashboardService(
	tx ports.TxManager,
	bikeRepo ports.BikeRepository,
	saleRepo ports.SaleRepository,
	orderRepo ports.ServiceOrderRepository,
	resolver *RefResolver,
	clock ports.Clock,
	logger ports.LoggerPort,
	settings DashboardSettings,
) *DashboardService {
	return &DashboardService{
		tx:        tx,
		bikeRepo:  bikeRepo,
		saleRepo:  saleRepo,
		orderRepo: orderRepo,
		resolver:  resolver,
		clock:     clock,
		logger:    logger,
		settings:  settings,
	}
}

// Stats reads every figure from the same snapshot. Any failure discards the
// whole result.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	since := s.clock.Now().Add(-s.settings.RecentSalesWindow)

	var stats domain.DashboardStats
	err := s.tx.WithinSnapshot(ctx, func(r ports.TxRepos) error {
		var err error
		if stats.TotalBikes, err = r.Bikes().CountBikes(ctx); err != nil {
			return err
		}
		if stats.TotalCustomers, err = r.Customers().CountCustomers(ctx); err != nil {
			return err
		}
		if stats.TotalSales, err = r.Sales().CountSales(ctx); err != nil {
			return err
		}
		if stats.TotalServices, err = r.ServiceOrders().CountServiceOrders(ctx); err != nil {
			return err
		}
		if stats.LowStock, err = r.Bikes().CountBikesStockBelow(ctx, s.settings.LowStockThreshold); err != nil {
			return err
		}
		stats.RecentSalesAmount, err = r.Sales().SumSalesSince(ctx, since)
		return err
	})
	if err != nil {
		s.logger.Error("Failed to compute dashboard stats", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return &stats, nil
}

func (s *DashboardService) LowStockBikes(ctx context.Context) ([]*domain.Bike, error) {
	threshold := s.settings.LowStockThreshold
	bikes, err := s.bikeRepo.ListBikes(ctx, domain.BikeFilter{
		ListOptions: domain.NewListOptions(domain.NewestFirst, 0),
		StockBelow:  &threshold,
	})
	if err != nil {
		s.logger.Error("Failed to list low stock bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return bikes, nil
}

func (s *DashboardService) RecentSales(ctx context.Context) ([]*domain.SaleView, error) {
	sales, err := s.saleRepo.ListSales(ctx, domain.NewListOptions(domain.NewestFirst, s.settings.RecentSalesLimit))
	if err != nil {
		s.logger.Error("Failed to list recent sales", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.resolver.SaleViews(ctx, sales), nil
}

func (s *DashboardService) PendingServices(ctx context.Context) ([]*domain.ServiceOrderView, error) {
	pending := domain.ServicePending
	orders, err := s.orderRepo.ListServiceOrders(ctx, domain.ServiceOrderFilter{
		ListOptions: domain.NewListOptions(domain.NewestFirst, 0),
		Status:      &pending,
	})
	if err != nil {
		s.logger.Error("Failed to list pending services", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.resolver.ServiceOrderViews(ctx, orders), nil
}
