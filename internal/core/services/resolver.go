package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/google/uuid"
)

// RefResolver follows the soft references held by sales, purchases and
// service orders. A lookup never fails: anything that does not produce a
// record resolves to a dangling reference.
type RefResolver struct {
	customers ports.CustomerRepository
	bikes     ports.BikeRepository
	suppliers ports.SupplierRepository
	logger    ports.LoggerPort
}

func NewRefResolver(
	customers ports.CustomerRepository,
	bikes ports.BikeRepository,
	suppliers ports.SupplierRepository,
	logger ports.LoggerPort,
) *RefResolver {
	return &RefResolver{
		customers: customers,
		bikes:     bikes,
		suppliers: suppliers,
		logger:    logger,
	}
}

func (r *RefResolver) ResolveCustomer(ctx context.Context, ref string) domain.Reference[domain.Customer] {
	return resolve(ctx, r, "customer", ref, r.customers.GetCustomerByID)
}

func (r *RefResolver) ResolveBike(ctx context.Context, ref string) domain.Reference[domain.Bike] {
	return resolve(ctx, r, "bike", ref, r.bikes.GetBikeByID)
}

// ResolveOptionalBike distinguishes a bike that was never set (nil) from one
// that is set but gone.
func (r *RefResolver) ResolveOptionalBike(ctx context.Context, ref *string) domain.Reference[domain.Bike] {
	if ref == nil {
		return domain.UnsetRef[domain.Bike]()
	}
	return r.ResolveBike(ctx, *ref)
}

func (r *RefResolver) ResolveSupplier(ctx context.Context, ref string) domain.Reference[domain.Supplier] {
	return resolve(ctx, r, "supplier", ref, r.suppliers.GetSupplierByID)
}

func resolve[T any](
	ctx context.Context,
	r *RefResolver,
	kind string,
	ref string,
	lookup func(context.Context, uuid.UUID) (*T, error),
) domain.Reference[T] {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return domain.UnsetRef[T]()
	}

	id, err := uuid.Parse(ref)
	if err != nil {
		return domain.DanglingRef[T](ref)
	}

	target, err := lookup(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			r.logger.Warn("Reference lookup failed", map[string]interface{}{
				"kind":  kind,
				"id":    ref,
				"error": err.Error(),
			})
		}
		return domain.DanglingRef[T](ref)
	}

	return domain.ResolvedRef(ref, target)
}

func (r *RefResolver) SaleView(ctx context.Context, sale *domain.Sale) *domain.SaleView {
	return &domain.SaleView{
		Sale:     *sale,
		Customer: r.ResolveCustomer(ctx, sale.CustomerID),
		Bike:     r.ResolveBike(ctx, sale.BikeID),
	}
}

func (r *RefResolver) PurchaseView(ctx context.Context, purchase *domain.Purchase) *domain.PurchaseView {
	return &domain.PurchaseView{
		Purchase: *purchase,
		Supplier: r.ResolveSupplier(ctx, purchase.SupplierID),
		Bike:     r.ResolveBike(ctx, purchase.BikeID),
	}
}

func (r *RefResolver) ServiceOrderView(ctx context.Context, order *domain.ServiceOrder) *domain.ServiceOrderView {
	return &domain.ServiceOrderView{
		ServiceOrder: *order,
		Customer:     r.ResolveCustomer(ctx, order.CustomerID),
		Bike:         r.ResolveOptionalBike(ctx, order.BikeID),
	}
}

func (r *RefResolver) SaleViews(ctx context.Context, sales []*domain.Sale) []*domain.SaleView {
	views := make([]*domain.SaleView, len(sales))
	for i, sale := range sales {
		views[i] = r.SaleView(ctx, sale)
	}
	return views
}

func (r *RefResolver) PurchaseViews(ctx context.Context, purchases []*domain.Purchase) []*domain.PurchaseView {
	views := make([]*domain.PurchaseView, len(purchases))
	for i, purchase := range purchases {
		views[i] = r.PurchaseView(ctx, purchase)
	}
	return views
}

func (r *RefResolver) ServiceOrderViews(ctx context.Context, orders []*domain.ServiceOrder) []*domain.ServiceOrderView {
	views := make([]*domain.ServiceOrderView, len(orders))
	for i, order := range orders {
		views[i] = r.ServiceOrderView(ctx, order)
	}
	return views
}
