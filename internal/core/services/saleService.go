package services

import (
	"context"
	"fmt"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SaleService struct {
	tx       ports.TxManager
	saleRepo ports.SaleRepository
	resolver *RefResolver
	stock    *StockRule
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewSaleService(
	tx ports.TxManager,
	saleRepo ports.SaleRepository,
	resolver *RefResolver,
	stock *StockRule,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *SaleService {
	return &SaleService{
		tx:       tx,
		saleRepo: saleRepo,
		resolver: resolver,
		stock:    stock,
		logger:   logger,
		validate: validate,
	}
}

// CreateSale stores the sale and takes its quantity off the bike's stock in
// one transaction. The sale is recorded even when the bike is unknown.
func (s *SaleService) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.SaleView, *domain.StockAdjustment, error) {
	if err := s.validate.Struct(sale); err != nil {
		s.logger.Error("Sale validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, nil, validationError(err)
	}
	if sale.TotalAmount.IsNegative() {
		return nil, nil, domain.ValidationError("total_amount must not be negative")
	}
	if sale.SaleDate.IsZero() {
		return nil, nil, domain.ValidationError("sale_date is required")
	}

	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}

	var (
		created *domain.Sale
		adj     domain.StockAdjustment
	)
	err := s.tx.WithinTx(ctx, func(r ports.TxRepos) error {
		var err error
		created, err = r.Sales().CreateSale(ctx, sale)
		if err != nil {
			return err
		}
		adj, err = s.stock.apply(ctx, r.Bikes(), domain.StockChangeSale, created.ID, created.BikeID, -created.Quantity)
		if err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to create sale", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": sale.BikeID,
		})
		return nil, nil, err
	}

	s.stock.settle(ctx, adj)

	s.logger.Info("Sale created successfully", map[string]interface{}{
		"sale_id":        created.ID,
		"bike_id":        created.BikeID,
		"quantity":       created.Quantity,
		"stock_adjusted": adj.Applied,
	})

	return s.resolver.SaleView(ctx, created), &adj, nil
}

func (s *SaleService) GetSaleByID(ctx context.Context, saleID string) (*domain.SaleView, error) {
	id, err := parseID("sale", saleID)
	if err != nil {
		return nil, err
	}

	sale, err := s.saleRepo.GetSaleByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get sale", map[string]interface{}{
			"error":   err.Error(),
			"sale_id": saleID,
		})
		return nil, err
	}

	return s.resolver.SaleView(ctx, sale), nil
}

func (s *SaleService) ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.SaleView, error) {
	sales, err := s.saleRepo.ListSales(ctx, opts)
	if err != nil {
		s.logger.Error("Failed to list sales", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.resolver.SaleViews(ctx, sales), nil
}

// UpdateSale never touches stock, even when quantity or bike change.
func (s *SaleService) UpdateSale(ctx context.Context, saleID string, patch domain.SalePatch) (*domain.SaleView, error) {
	id, err := parseID("sale", saleID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if patch.TotalAmount != nil && patch.TotalAmount.IsNegative() {
		return nil, domain.ValidationError("total_amount must not be negative")
	}

	updated, err := s.saleRepo.UpdateSale(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update sale", map[string]interface{}{
			"error":   err.Error(),
			"sale_id": saleID,
		})
		return nil, err
	}

	s.logger.Info("Sale updated successfully", map[string]interface{}{
		"sale_id": saleID,
	})
	return s.resolver.SaleView(ctx, updated), nil
}

// DeleteSale does not give the quantity back to the bike.
func (s *SaleService) DeleteSale(ctx context.Context, saleID string) error {
	id, err := parseID("sale", saleID)
	if err != nil {
		return err
	}
	if err := s.saleRepo.DeleteSale(ctx, id); err != nil {
		s.logger.Error("Failed to delete sale", map[string]interface{}{
			"error":   err.Error(),
			"sale_id": saleID,
		})
		return err
	}

	s.logger.Info("Sale deleted successfully", map[string]interface{}{
		"sale_id": saleID,
	})
	return nil
}
