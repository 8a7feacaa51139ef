package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseService struct {
	tx           ports.TxManager
	purchaseRepo ports.PurchaseRepository
	resolver     *RefResolver
	stock        *StockRule
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewPurchaseService(
	tx ports.TxManager,
	purchaseRepo ports.PurchaseRepository,
	resolver *RefResolver,
	stock *StockRule,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *PurchaseService {
	return &PurchaseService{
		tx:           tx,
		purchaseRepo: purchaseRepo,
		resolver:     resolver,
		stock:        stock,
		logger:       logger,
		validate:     validate,
	}
}

// CreatePurchase stores the purchase and adds its quantity to the bike's
// stock in one transaction. A zero total cost is filled in as
// unit_cost * quantity.
func (s *PurchaseService) CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.PurchaseView, *domain.StockAdjustment, error) {
	if err := s.validate.Struct(purchase); err != nil {
		s.logger.Error("Purchase validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, nil, validationError(err)
	}
	if purchase.UnitCost.IsNegative() || purchase.TotalCost.IsNegative() {
		return nil, nil, domain.ValidationError("costs must not be negative")
	}
	if purchase.PurchaseDate.IsZero() {
		return nil, nil, domain.ValidationError("purchase_date is required")
	}
	if purchase.TotalCost.IsZero() {
		purchase.TotalCost = purchase.UnitCost.Mul(decimal.NewFromInt(int64(purchase.Quantity)))
	}

	if purchase.ID == uuid.Nil {
		purchase.ID = uuid.New()
	}

	var (
		created *domain.Purchase
		adj     domain.StockAdjustment
	)
	err := s.tx.WithinTx(ctx, func(r ports.TxRepos) error {
		var err error
		created, err = r.Purchases().CreatePurchase(ctx, purchase)
		if err != nil {
			return err
		}
		adj, err = s.stock.apply(ctx, r.Bikes(), domain.StockChangePurchase, created.ID, created.BikeID, created.Quantity)
		if err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to create purchase", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": purchase.BikeID,
		})
		return nil, nil, err
	}

	s.stock.settle(ctx, adj)

	s.logger.Info("Purchase created successfully", map[string]interface{}{
		"purchase_id":    created.ID,
		"bike_id":        created.BikeID,
		"quantity":       created.Quantity,
		"stock_adjusted": adj.Applied,
	})

	return s.resolver.PurchaseView(ctx, created), &adj, nil
}

func (s *PurchaseService) GetPurchaseByID(ctx context.Context, purchaseID string) (*domain.PurchaseView, error) {
	id, err := parseID("purchase", purchaseID)
	if err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.GetPurchaseByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get purchase", map[string]interface{}{
			"error":       err.Error(),
			"purchase_id": purchaseID,
		})
		return nil, err
	}

	return s.resolver.PurchaseView(ctx, purchase), nil
}

func (s *PurchaseService) ListPurchases(ctx context.Context, opts domain.ListOptions) ([]*domain.PurchaseView, error) {
	purchases, err := s.purchaseRepo.ListPurchases(ctx, opts)
	if err != nil {
		s.logger.Error("Failed to list purchases", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.resolver.PurchaseViews(ctx, purchases), nil
}

// UpdatePurchase never touches stock.
func (s *PurchaseService) UpdatePurchase(ctx context.Context, purchaseID string, patch domain.PurchasePatch) (*domain.PurchaseView, error) {
	id, err := parseID("purchase", purchaseID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if (patch.UnitCost != nil && patch.UnitCost.IsNegative()) || (patch.TotalCost != nil && patch.TotalCost.IsNegative()) {
		return nil, domain.ValidationError("costs must not be negative")
	}

	updated, err := s.purchaseRepo.UpdatePurchase(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update purchase", map[string]interface{}{
			"error":       err.Error(),
			"purchase_id": purchaseID,
		})
		return nil, err
	}

	s.logger.Info("Purchase updated successfully", map[string]interface{}{
		"purchase_id": purchaseID,
	})
	return s.resolver.PurchaseView(ctx, updated), nil
}

// DeletePurchase does not take the quantity back off the bike.
func (s *PurchaseService) DeletePurchase(ctx context.Context, purchaseID string) error {
	id, err := parseID("purchase", purchaseID)
	if err != nil {
		return err
	}
	if err := s.purchaseRepo.DeletePurchase(ctx, id); err != nil {
		s.logger.Error("Failed to delete purchase", map[string]interface{}{
			"error":       err.Error(),
			"purchase_id": purchaseID,
		})
		return err
	}

	s.logger.Info("Purchase deleted successfully", map[string]interface{}{
		"purchase_id": purchaseID,
	})
	return nil
}
