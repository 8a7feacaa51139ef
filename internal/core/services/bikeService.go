package services

import (
	"context"
	"encoding/json"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BikeService struct {
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

// CreateBike stores the stock quantity exactly as given.
func (s *BikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}
	if bike.Price.IsNegative() {
		return nil, domain.ValidationError("price must not be negative")
	}

	if bike.ID == uuid.Nil {
		bike.ID = uuid.New()
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error": err.Error(),
			"model": bike.ModelName,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.ID,
		"stock":   createdBike.StockQuantity,
	})

	return createdBike, nil
}

func (s *BikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		s.logger.Warn("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
		})
		return nil, err
	}

	cacheKey := bikeCacheKey(bikeUUID.String())
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedBike domain.Bike
		if err := json.Unmarshal(cachedData, &cachedBike); err == nil {
			s.logger.Debug("Bike found in cache", map[string]interface{}{
				"bike_id": bikeID,
			})
			return &cachedBike, nil
		}
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	bikeData, err := json.Marshal(bike)
	if err != nil {
		s.logger.Warn("Failed to marshal bike for cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	} else if err := s.cache.Set(cacheKey, bikeData, bikeCacheTTL); err != nil {
		s.logger.Warn("Failed to cache bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}

	return bike, nil
}

func (s *BikeService) ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ListBikes(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Debug("Listed bikes", map[string]interface{}{
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

func (s *BikeService) UpdateBike(ctx context.Context, bikeID string, patch domain.BikePatch) (*domain.Bike, error) {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(patch); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, validationError(err)
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, domain.ValidationError("price must not be negative")
	}

	updatedBike, err := s.bikeRepo.UpdateBike(ctx, bikeUUID, patch)
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.invalidate(bikeUUID.String())

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return updatedBike, nil
}

// DeleteBike leaves sales, purchases and services that point at the bike alone.
func (s *BikeService) DeleteBike(ctx context.Context, bikeID string) error {
	bikeUUID, err := parseID("bike", bikeID)
	if err != nil {
		return err
	}

	if err := s.bikeRepo.DeleteBike(ctx, bikeUUID); err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.invalidate(bikeUUID.String())

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

func (s *BikeService) invalidate(bikeID string) {
	if err := s.cache.Delete(bikeCacheKey(bikeID)); err != nil {
		s.logger.Warn("Failed to invalidate bike cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}
}
