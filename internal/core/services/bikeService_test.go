package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBike(t *testing.T) {
	tests := []struct {
		name    string
		bike    domain.Bike
		wantErr error
	}{
		{
			name: "valid bike keeps stock as given",
			bike: domain.Bike{ModelName: "Allez", Brand: "Specialized", Type: domain.Road, Price: decimal.NewFromInt(900), StockQuantity: 7},
		},
		{
			name: "negative stock accepted",
			bike: domain.Bike{ModelName: "Allez", Brand: "Specialized", Type: domain.Road, StockQuantity: -1},
		},
		{
			name:    "missing model",
			bike:    domain.Bike{Brand: "Specialized", Type: domain.Road},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "negative price",
			bike:    domain.Bike{ModelName: "Allez", Brand: "Specialized", Type: domain.Road, Price: decimal.NewFromInt(-1)},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sh := newShop()
			bike := tt.bike

			created, err := sh.bikes.CreateBike(context.Background(), &bike)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, created.ID)
			assert.Equal(t, tt.bike.StockQuantity, created.StockQuantity)
		})
	}
}

func TestGetBikeByID_ReadThroughCache(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bike := sh.addBike(3)
	key := bikeCacheKey(bike.ID.String())

	got, err := sh.bikes.GetBikeByID(ctx, bike.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 3, got.StockQuantity)
	require.Contains(t, sh.cache.data, key)

	// a cached copy wins over the store
	stale := *bike
	stale.StockQuantity = 99
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	sh.cache.data[key] = raw

	got, err = sh.bikes.GetBikeByID(ctx, bike.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 99, got.StockQuantity)
}

func TestUpdateBike_InvalidatesCache(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bike := sh.addBike(3)

	_, err := sh.bikes.GetBikeByID(ctx, bike.ID.String())
	require.NoError(t, err)

	stock := 11
	price := decimal.RequireFromString("1099.00")
	updated, err := sh.bikes.UpdateBike(ctx, bike.ID.String(), domain.BikePatch{StockQuantity: &stock, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 11, updated.StockQuantity)
	assert.Equal(t, "Stumpjumper", updated.ModelName)

	assert.NotContains(t, sh.cache.data, bikeCacheKey(bike.ID.String()))

	got, err := sh.bikes.GetBikeByID(ctx, bike.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 11, got.StockQuantity)
}

func TestUpdateBike_Errors(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bike := sh.addBike(3)

	_, err := sh.bikes.UpdateBike(ctx, "abc", domain.BikePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = sh.bikes.UpdateBike(ctx, uuid.NewString(), domain.BikePatch{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty := ""
	_, err = sh.bikes.UpdateBike(ctx, bike.ID.String(), domain.BikePatch{Brand: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestListBikes_StockBelow(t *testing.T) {
	sh := newShop()
	sh.addBike(1)
	sh.addBike(6)
	sh.addBike(3)

	below := 4
	bikes, err := sh.bikes.ListBikes(context.Background(), domain.BikeFilter{StockBelow: &below})
	require.NoError(t, err)
	assert.Len(t, bikes, 2)
	for _, b := range bikes {
		assert.Less(t, b.StockQuantity, below)
	}
}

func TestDeleteBike(t *testing.T) {
	sh := newShop()
	ctx := context.Background()
	bike := sh.addBike(3)

	require.NoError(t, sh.bikes.DeleteBike(ctx, bike.ID.String()))
	assert.Contains(t, sh.cache.deleted, bikeCacheKey(bike.ID.String()))

	assert.ErrorIs(t, sh.bikes.DeleteBike(ctx, bike.ID.String()), domain.ErrNotFound)
	assert.ErrorIs(t, sh.bikes.DeleteBike(ctx, "not-an-id"), domain.ErrNotFound)
}
