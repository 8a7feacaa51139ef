package ports

import "context"

// TxRepos are repositories bound to one open transaction.
type TxRepos interface {
	Bikes() BikeRepository
	Customers() CustomerRepository
	Sales() SaleRepository
	Purchases() PurchaseRepository
	ServiceOrders() ServiceOrderRepository
}

// TxManager hides begin/commit/rollback from the services. fn returning an
// error rolls everything back.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
	// WithinSnapshot runs fn in a read-only transaction that sees a single
	// point in time.
	WithinSnapshot(ctx context.Context, fn func(r TxRepos) error) error
}
