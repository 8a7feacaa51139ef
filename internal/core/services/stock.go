package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/google/uuid"
)

// StockRule moves a bike's stock when a sale or purchase is recorded.
// There is no floor: stock may go negative. A bike reference that does not
// resolve leaves every bike untouched.
type StockRule struct {
	cache   ports.CachePort
	events  ports.EventPublisherPort
	metrics ports.MetricsPort
	logger  ports.LoggerPort
	clock   ports.Clock
}

func NewStockRule(
	cache ports.CachePort,
	events ports.EventPublisherPort,
	metrics ports.MetricsPort,
	logger ports.LoggerPort,
	clock ports.Clock,
) *StockRule {
	return &StockRule{
		cache:   cache,
		events:  events,
		metrics: metrics,
		logger:  logger,
		clock:   clock,
	}
}

// apply runs inside the transaction that stores the sale or purchase.
func (s *StockRule) apply(
	ctx context.Context,
	bikes ports.BikeRepository,
	kind domain.StockChangeKind,
	sourceID uuid.UUID,
	bikeRef string,
	delta int,
) (domain.StockAdjustment, error) {
	adj := domain.StockAdjustment{
		Kind:     kind,
		SourceID: sourceID,
		BikeID:   bikeRef,
		Delta:    delta,
		At:       s.clock.Now(),
	}

	bikeID, err := uuid.Parse(strings.TrimSpace(bikeRef))
	if err != nil {
		return adj, nil
	}

	bike, err := bikes.AdjustStock(ctx, bikeID, delta)
	if errors.Is(err, domain.ErrNotFound) {
		return adj, nil
	}
	if err != nil {
		return adj, err
	}

	stock := bike.StockQuantity
	adj.BikeID = bike.ID.String()
	adj.Applied = true
	adj.NewStock = &stock
	return adj, nil
}

// settle runs after commit. Nothing here can undo the adjustment.
func (s *StockRule) settle(ctx context.Context, adj domain.StockAdjustment) {
	s.metrics.RecordStockAdjustment(adj.Kind, adj.Applied)

	if !adj.Applied {
		s.logger.Info("Stock left unchanged, bike not found", map[string]interface{}{
			"kind":      adj.Kind,
			"source_id": adj.SourceID,
			"bike_id":   adj.BikeID,
		})
		return
	}

	if err := s.cache.Delete(bikeCacheKey(adj.BikeID)); err != nil {
		s.logger.Warn("Failed to invalidate bike cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": adj.BikeID,
		})
	}

	if err := s.events.PublishStockAdjusted(ctx, adj); err != nil {
		s.logger.Warn("Failed to publish stock adjustment", map[string]interface{}{
			"error":     err.Error(),
			"bike_id":   adj.BikeID,
			"source_id": adj.SourceID,
		})
	}

	s.logger.Info("Stock adjusted", map[string]interface{}{
		"kind":      adj.Kind,
		"bike_id":   adj.BikeID,
		"delta":     adj.Delta,
		"new_stock": *adj.NewStock,
	})
}
