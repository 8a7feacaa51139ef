package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleRepository struct {
	db DBTX
}

func NewSaleRepository(db DBTX) *SaleRepository {
	return &SaleRepository{db: db}
}

const saleColumns = `id, customer_id, bike_id, quantity, total_amount, sale_date, created_at, updated_at`

var saleSort = sortColumns("sale_date", "total_amount", "quantity")

func scanSale(row rowScanner) (*domain.Sale, error) {
	s := &domain.Sale{}
	err := row.Scan(&s.ID, &s.CustomerID, &s.BikeID, &s.Quantity, &s.TotalAmount, &s.SaleDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SaleRepository) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	query := `INSERT INTO sales (id, customer_id, bike_id, quantity, total_amount, sale_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + saleColumns

	created, err := scanSale(r.db.QueryRowContext(ctx, query,
		sale.ID, sale.CustomerID, sale.BikeID, sale.Quantity, sale.TotalAmount, sale.SaleDate))
	if err != nil {
		return nil, mapError("sale", err)
	}
	return created, nil
}

func (r *SaleRepository) GetSaleByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error) {
	s, err := scanSale(r.db.QueryRowContext(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, saleID))
	if err != nil {
		return nil, mapError("sale", err)
	}
	return s, nil
}

func (r *SaleRepository) ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.Sale, error) {
	order, err := orderBy(opts.Sort, saleSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+saleColumns+` FROM sales`+order+limitClause(opts.Limit))
	if err != nil {
		return nil, mapError("sale", err)
	}
	defer rows.Close()

	sales := []*domain.Sale{}
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *SaleRepository) UpdateSale(ctx context.Context, saleID uuid.UUID, patch domain.SalePatch) (*domain.Sale, error) {
	query := `UPDATE sales
		SET
			customer_id = COALESCE($1, customer_id),
			bike_id = COALESCE($2, bike_id),
			quantity = COALESCE($3::integer, quantity),
			total_amount = COALESCE($4::numeric, total_amount),
			sale_date = COALESCE($5::timestamptz, sale_date),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + saleColumns

	s, err := scanSale(r.db.QueryRowContext(ctx, query,
		patch.CustomerID, patch.BikeID, patch.Quantity, patch.TotalAmount, patch.SaleDate, saleID))
	if err != nil {
		return nil, mapError("sale", err)
	}
	return s, nil
}

func (r *SaleRepository) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, saleID)
	if err != nil {
		return mapError("sale", err)
	}
	return expectRows("sale", result)
}

func (r *SaleRepository) CountSales(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "sale", `SELECT COUNT(*) FROM sales`)
}

func (r *SaleRepository) SumSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE created_at >= $1`, since).Scan(&total)
	if err != nil {
		return decimal.Zero, mapError("sale", err)
	}
	return total, nil
}

type PurchaseRepository struct {
	db DBTX
}

func NewPurchaseRepository(db DBTX) *PurchaseRepository {
	return &PurchaseRepository{db: db}
}

const purchaseColumns = `id, supplier_id, bike_id, quantity, unit_cost, total_cost, purchase_date, created_at, updated_at`

var purchaseSort = sortColumns("purchase_date", "total_cost", "unit_cost", "quantity")

func scanPurchase(row rowScanner) (*domain.Purchase, error) {
	p := &domain.Purchase{}
	err := row.Scan(&p.ID, &p.SupplierID, &p.BikeID, &p.Quantity, &p.UnitCost, &p.TotalCost, &p.PurchaseDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PurchaseRepository) CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `INSERT INTO purchases (id, supplier_id, bike_id, quantity, unit_cost, total_cost, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + purchaseColumns

	created, err := scanPurchase(r.db.QueryRowContext(ctx, query,
		purchase.ID, purchase.SupplierID, purchase.BikeID, purchase.Quantity,
		purchase.UnitCost, purchase.TotalCost, purchase.PurchaseDate))
	if err != nil {
		return nil, mapError("purchase", err)
	}
	return created, nil
}

func (r *PurchaseRepository) GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (*domain.Purchase, error) {
	p, err := scanPurchase(r.db.QueryRowContext(ctx, `SELECT `+purchaseColumns+` FROM purchases WHERE id = $1`, purchaseID))
	if err != nil {
		return nil, mapError("purchase", err)
	}
	return p, nil
}

func (r *PurchaseRepository) ListPurchases(ctx context.Context, opts domain.ListOptions) ([]*domain.Purchase, error) {
	order, err := orderBy(opts.Sort, purchaseSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+purchaseColumns+` FROM purchases`+order+limitClause(opts.Limit))
	if err != nil {
		return nil, mapError("purchase", err)
	}
	defer rows.Close()

	purchases := []*domain.Purchase{}
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, err
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func (r *PurchaseRepository) UpdatePurchase(ctx context.Context, purchaseID uuid.UUID, patch domain.PurchasePatch) (*domain.Purchase, error) {
	query := `UPDATE purchases
		SET
			supplier_id = COALESCE($1, supplier_id),
			bike_id = COALESCE($2, bike_id),
			quantity = COALESCE($3::integer, quantity),
			unit_cost = COALESCE($4::numeric, unit_cost),
			total_cost = COALESCE($5::numeric, total_cost),
			purchase_date = COALESCE($6::timestamptz, purchase_date),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING ` + purchaseColumns

	p, err := scanPurchase(r.db.QueryRowContext(ctx, query,
		patch.SupplierID, patch.BikeID, patch.Quantity, patch.UnitCost, patch.TotalCost, patch.PurchaseDate, purchaseID))
	if err != nil {
		return nil, mapError("purchase", err)
	}
	return p, nil
}

func (r *PurchaseRepository) DeletePurchase(ctx context.Context, purchaseID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = $1`, purchaseID)
	if err != nil {
		return mapError("purchase", err)
	}
	return expectRows("purchase", result)
}

type ServiceOrderRepository struct {
	db DBTX
}

func NewServiceOrderRepository(db DBTX) *ServiceOrderRepository {
	return &ServiceOrderRepository{db: db}
}

const serviceColumns = `id, customer_id, bike_id, service_type, description, cost, service_date, status, created_at, updated_at`

var serviceSort = sortColumns("service_date", "service_type", "status", "cost")

func scanServiceOrder(row rowScanner) (*domain.ServiceOrder, error) {
	o := &domain.ServiceOrder{}
	var bikeID sql.NullString
	err := row.Scan(&o.ID, &o.CustomerID, &bikeID, &o.ServiceType, &o.Description, &o.Cost, &o.ServiceDate, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if bikeID.Valid {
		o.BikeID = &bikeID.String
	}
	return o, nil
}

func (r *ServiceOrderRepository) CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrder, error) {
	query := `INSERT INTO services (id, customer_id, bike_id, service_type, description, cost, service_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + serviceColumns

	created, err := scanServiceOrder(r.db.QueryRowContext(ctx, query,
		order.ID, order.CustomerID, order.BikeID, order.ServiceType, order.Description,
		order.Cost, order.ServiceDate, order.Status))
	if err != nil {
		return nil, mapError("service", err)
	}
	return created, nil
}

func (r *ServiceOrderRepository) GetServiceOrderByID(ctx context.Context, orderID uuid.UUID) (*domain.ServiceOrder, error) {
	o, err := scanServiceOrder(r.db.QueryRowContext(ctx, `SELECT `+serviceColumns+` FROM services WHERE id = $1`, orderID))
	if err != nil {
		return nil, mapError("service", err)
	}
	return o, nil
}

func (r *ServiceOrderRepository) ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrder, error) {
	order, err := orderBy(filter.Sort, serviceSort)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	var args []interface{}
	if filter.Status != nil {
		query += ` WHERE status = $1`
		args = append(args, *filter.Status)
	}
	query += order + limitClause(filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("service", err)
	}
	defer rows.Close()

	orders := []*domain.ServiceOrder{}
	for rows.Next() {
		o, err := scanServiceOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ServiceOrderRepository) UpdateServiceOrder(ctx context.Context, orderID uuid.UUID, patch domain.ServiceOrderPatch) (*domain.ServiceOrder, error) {
	// $3 wins over $2: clearing the bike drops the reference entirely.
	query := `UPDATE services
		SET
			customer_id = COALESCE($1, customer_id),
			bike_id = CASE WHEN $3::boolean THEN NULL ELSE COALESCE($2, bike_id) END,
			service_type = COALESCE($4, service_type),
			description = COALESCE($5, description),
			cost = COALESCE($6::numeric, cost),
			service_date = COALESCE($7::timestamptz, service_date),
			status = COALESCE($8, status),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING ` + serviceColumns

	o, err := scanServiceOrder(r.db.QueryRowContext(ctx, query,
		patch.CustomerID, patch.BikeID, patch.ClearBike, patch.ServiceType, patch.Description,
		patch.Cost, patch.ServiceDate, patch.Status, orderID))
	if err != nil {
		return nil, mapError("service", err)
	}
	return o, nil
}

func (r *ServiceOrderRepository) DeleteServiceOrder(ctx context.Context, orderID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, orderID)
	if err != nil {
		return mapError("service", err)
	}
	return expectRows("service", result)
}

func (r *ServiceOrderRepository) CountServiceOrders(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "service", `SELECT COUNT(*) FROM services`)
}
