package services

import (
	"context"
	"testing"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateServiceOrder_DefaultsToPending(t *testing.T) {
	sh := newShop()

	order, err := sh.orders.CreateServiceOrder(context.Background(), &domain.ServiceOrder{
		CustomerID:  uuid.NewString(),
		ServiceType: "annual service",
		Cost:        decimal.RequireFromString("45.00"),
		ServiceDate: saleDate(),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ServicePending, order.Status)
	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, domain.RefDangling, order.Customer.State)
}

func TestCreateServiceOrder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		order domain.ServiceOrder
	}{
		{name: "unknown status", order: domain.ServiceOrder{CustomerID: "c", ServiceType: "x", ServiceDate: saleDate(), Status: "lost"}},
		{name: "missing type", order: domain.ServiceOrder{CustomerID: "c", ServiceDate: saleDate()}},
		{name: "missing customer", order: domain.ServiceOrder{ServiceType: "x", ServiceDate: saleDate()}},
		{name: "negative cost", order: domain.ServiceOrder{CustomerID: "c", ServiceType: "x", ServiceDate: saleDate(), Cost: decimal.NewFromInt(-5)}},
		{name: "missing date", order: domain.ServiceOrder{CustomerID: "c", ServiceType: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newShop()
			order := tt.order
			_, err := sh.orders.CreateServiceOrder(context.Background(), &order)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUpdateServiceOrder_ClearsBikeOnEmptyString(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bikeID := sh.addBike(2).ID.String()

	order, err := sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
		CustomerID:  uuid.NewString(),
		BikeID:      &bikeID,
		ServiceType: "tyre change",
		ServiceDate: saleDate(),
	})
	require.NoError(t, err)
	require.NotNil(t, order.BikeID)

	status := domain.ServiceInProgress
	empty := ""
	updated, err := sh.orders.UpdateServiceOrder(ctx, order.ID.String(), domain.ServiceOrderPatch{
		BikeID: &empty,
		Status: &status,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.BikeID)
	assert.Equal(t, domain.RefUnset, updated.Bike.State)
	assert.Equal(t, domain.ServiceInProgress, updated.Status)
}

func TestUpdateServiceOrder_KeepsBikeWhenOmitted(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bikeID := sh.addBike(2).ID.String()

	order, err := sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
		CustomerID:  uuid.NewString(),
		BikeID:      &bikeID,
		ServiceType: "tyre change",
		ServiceDate: saleDate(),
	})
	require.NoError(t, err)

	cost := decimal.NewFromInt(30)
	updated, err := sh.orders.UpdateServiceOrder(ctx, order.ID.String(), domain.ServiceOrderPatch{Cost: &cost})
	require.NoError(t, err)

	require.NotNil(t, updated.BikeID)
	assert.Equal(t, bikeID, *updated.BikeID)
	assert.True(t, updated.Cost.Equal(cost))
}

func TestListServiceOrders_StatusFilter(t *testing.T) {
	sh := newShop()
	ctx := context.Background()

	for _, status := range []domain.ServiceStatus{domain.ServicePending, domain.ServiceCompleted, domain.ServiceCompleted} {
		_, err := sh.orders.CreateServiceOrder(ctx, &domain.ServiceOrder{
			CustomerID:  uuid.NewString(),
			ServiceType: "check-up",
			ServiceDate: saleDate(),
			Status:      status,
		})
		require.NoError(t, err)
	}

	completed := domain.ServiceCompleted
	orders, err := sh.orders.ListServiceOrders(ctx, domain.ServiceOrderFilter{Status: &completed})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	unknown := domain.ServiceStatus("archived")
	_, err = sh.orders.ListServiceOrders(ctx, domain.ServiceOrderFilter{Status: &unknown})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestServiceOrder_NotFound(t *testing.T) {
	sh := newShop()
	ctx := context.Background()

	_, err := sh.orders.GetServiceOrderByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, sh.orders.DeleteServiceOrder(ctx, "nope"), domain.ErrNotFound)
}
