package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats_Empty(t *testing.T) {
	sh := newShop()

	stats, err := sh.dashboard.Stats(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalBikes)
	assert.Zero(t, stats.TotalCustomers)
	assert.Zero(t, stats.TotalSales)
	assert.Zero(t, stats.TotalServices)
	assert.Zero(t, stats.LowStock)
	assert.True(t, stats.RecentSalesAmount.IsZero())
}

func TestDashboardStats_Counts(t *testing.T) {
	sh := newShop()
	ctx := context.Background()

	sh.addBike(5)
	sh.addBike(4)
	sh.addBike(0)
	sh.addBike(-2)
	sh.addBike(30)
	customer := sh.addCustomer("olga@example.com")

	_, err := sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
		CustomerID:  customer.ID.String(),
		ServiceType: "brake tuning",
		ServiceDate: saleDate(),
	})
	require.NoError(t, err)

	stats, err := sh.dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 5, stats.TotalBikes)
	assert.EqualValues(t, 1, stats.TotalCustomers)
	assert.EqualValues(t, 0, stats.TotalSales)
	assert.EqualValues(t, 1, stats.TotalServices)
	// 4, 0 and -2 are below 5; 5 itself is not
	assert.EqualValues(t, 3, stats.LowStock)
}

func TestDashboardStats_RecentSalesWindow(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	since := sh.clock.Now().Add(-DefaultRecentSalesWindow)

	record := func(createdAt time.Time, amount string) {
		sh.store.setNow(createdAt)
		sale := newSale(uuid.NewString(), uuid.NewString(), 1)
		sale.TotalAmount = decimal.RequireFromString(amount)
		_, _, err := sh.sales.CreateSale(ctx, sale)
		require.NoError(t, err)
	}

	record(since.Add(-time.Second), "1000.00")
	record(since, "250.50")
	record(sh.clock.Now().Add(-time.Hour), "99.50")

	stats, err := sh.dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 3, stats.TotalSales)
	assert.True(t, stats.RecentSalesAmount.Equal(decimal.RequireFromString("350.00")), stats.RecentSalesAmount.String())
}

func TestDashboardStats_FailureDiscardsResult(t *testing.T) {
	sh := newShop()
	sh.addBike(1)
	sh.store.countErr = errors.New("connection refused")

	stats, err := sh.dashboard.Stats(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
}

func TestDashboardLowStockBikes(t *testing.T) {
	sh := newShop()
	low := sh.addBike(4)
	sh.addBike(5)
	negative := sh.addBike(-1)

	bikes, err := sh.dashboard.LowStockBikes(context.Background())
	require.NoError(t, err)

	ids := make([]uuid.UUID, 0, len(bikes))
	for _, b := range bikes {
		ids = append(ids, b.ID)
	}
	assert.ElementsMatch(t, []uuid.UUID{low.ID, negative.ID}, ids)
}

func TestDashboardRecentSales_NewestTen(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bike := sh.addBike(100)

	var created []uuid.UUID
	for i := 0; i < 12; i++ {
		view, _, err := sh.sales.CreateSale(ctx, newSale(uuid.NewString(), bike.ID.String(), 1))
		require.NoError(t, err)
		created = append(created, view.ID)
	}

	recent, err := sh.dashboard.RecentSales(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 10)

	assert.Equal(t, created[11], recent[0].ID)
	assert.Equal(t, created[2], recent[9].ID)
	for i := 1; i < len(recent); i++ {
		assert.True(t, recent[i-1].CreatedAt.After(recent[i].CreatedAt))
	}
	assert.True(t, recent[0].Bike.Found())
}

func TestDashboardPendingServices(t *testing.T) {
	sh := newShop()
	ctx := context.Background()

	pending, err := sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
		CustomerID:  uuid.NewString(),
		ServiceType: "wheel truing",
		ServiceDate: saleDate(),
	})
	require.NoError(t, err)

	_, err = sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
		CustomerID:  uuid.NewString(),
		ServiceType: "chain swap",
		ServiceDate: saleDate(),
		Status:      domain.ServiceCompleted,
	})
	require.NoError(t, err)

	orders, err := sh.dashboard.PendingServices(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, pending.ID, orders[0].ID)
	assert.Equal(t, domain.RefUnset, orders[0].Bike.State)
}

func TestDashboard_CustomSettings(t *testing.T) {
	sh := newShop()
	sh.addBike(2)
	sh.addBike(3)

	dashboard := NewDashboardService(sh.store, sh.store, sh.store, sh.store, sh.resolver, sh.clock, nopLogger{}, DashboardSettings{
		LowStockThreshold: 3,
		RecentSalesWindow: 24 * time.Hour,
		RecentSalesLimit:  1,
	})

	stats, err := dashboard.Stats(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.LowStock)
}
