package ports

import (
	"context"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error
	CountBikes(ctx context.Context) (int64, error)
	CountBikesStockBelow(ctx context.Context, threshold int) (int64, error)
	// AdjustStock adds delta to the stock in a single statement and returns
	// the updated bike, or domain.ErrNotFound.
	AdjustStock(ctx context.Context, bikeID uuid.UUID, delta int) (*domain.Bike, error)
}

type BikeService interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error)
	ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bikeID string, patch domain.BikePatch) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID string) error
}
