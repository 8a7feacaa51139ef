package services

import (
	"context"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ServiceOrderService struct {
	orderRepo ports.ServiceOrderRepository
	resolver  *RefResolver
	logger    ports.LoggerPort
	validate  *validator.Validate
}

func NewServiceOrderService(
	orderRepo ports.ServiceOrderRepository,
	resolver *RefResolver,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ServiceOrderService {
	return &ServiceOrderService{
		orderRepo: orderRepo,
		resolver:  resolver,
		logger:    logger,
		validate:  validate,
	}
}

func (s *ServiceOrderService) CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrderView, error) {
	if order.Status == "" {
		order.Status = domain.ServicePending
	}
	if order.BikeID != nil && *order.BikeID == "" {
		order.BikeID = nil
	}

	if err := s.validate.Struct(order); err != nil {
		s.logger.Error("Service order validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}
	if order.Cost.IsNegative() {
		return nil, domain.ValidationError("cost must not be negative")
	}
	if order.ServiceDate.IsZero() {
		return nil, domain.ValidationError("service_date is required")
	}

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	created, err := s.orderRepo.CreateServiceOrder(ctx, order)
	if err != nil {
		s.logger.Error("Failed to create service order", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": order.CustomerID,
		})
		return nil, err
	}

	s.logger.Info("Service order created successfully", map[string]interface{}{
		"service_id": created.ID,
		"status":     created.Status,
	})

	return s.resolver.ServiceOrderView(ctx, created), nil
}

func (s *ServiceOrderService) GetServiceOrderByID(ctx context.Context, orderID string) (*domain.ServiceOrderView, error) {
	id, err := parseID("service", orderID)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetServiceOrderByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get service order", map[string]interface{}{
			"error":      err.Error(),
			"service_id": orderID,
		})
		return nil, err
	}

	return s.resolver.ServiceOrderView(ctx, order), nil
}

func (s *ServiceOrderService) ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrderView, error) {
	if filter.Status != nil {
		if err := s.validate.Var(string(*filter.Status), "oneof=pending in_progress completed cancelled"); err != nil {
			return nil, domain.ValidationError("unknown status %q", *filter.Status)
		}
	}

	orders, err := s.orderRepo.ListServiceOrders(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list service orders", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return s.resolver.ServiceOrderViews(ctx, orders), nil
}

func (s *ServiceOrderService) UpdateServiceOrder(ctx context.Context, orderID string, patch domain.ServiceOrderPatch) (*domain.ServiceOrderView, error) {
	id, err := parseID("service", orderID)
	if err != nil {
		return nil, err
	}
	if patch.BikeID != nil && *patch.BikeID == "" {
		patch.BikeID = nil
		patch.ClearBike = true
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if patch.Cost != nil && patch.Cost.IsNegative() {
		return nil, domain.ValidationError("cost must not be negative")
	}

	updated, err := s.orderRepo.UpdateServiceOrder(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update service order", map[string]interface{}{
			"error":      err.Error(),
			"service_id": orderID,
		})
		return nil, err
	}

	s.logger.Info("Service order updated successfully", map[string]interface{}{
		"service_id": orderID,
		"status":     updated.Status,
	})
	return s.resolver.ServiceOrderView(ctx, updated), nil
}

func (s *ServiceOrderService) DeleteServiceOrder(ctx context.Context, orderID string) error {
	id, err := parseID("service", orderID)
	if err != nil {
		return err
	}
	if err := s.orderRepo.DeleteServiceOrder(ctx, id); err != nil {
		s.logger.Error("Failed to delete service order", map[string]interface{}{
			"error":      err.Error(),
			"service_id": orderID,
		})
		return err
	}

	s.logger.Info("Service order deleted successfully", map[string]interface{}{
		"service_id": orderID,
	})
	return nil
}
