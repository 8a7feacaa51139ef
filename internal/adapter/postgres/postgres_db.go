package postgres

import (
	"context"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository struct {
	db DBTX
}

func NewBikeRepository(db DBTX) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

const bikeColumns = `id, model_name, brand, type, price, stock_quantity, created_at, updated_at`

var bikeSort = sortColumns("model_name", "brand", "type", "price", "stock_quantity")

func scanBike(row rowScanner) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.ID,
		&bike.ModelName,
		&bike.Brand,
		&bike.Type,
		&bike.Price,
		&bike.StockQuantity,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (id, model_name, brand, type, price, stock_quantity)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + bikeColumns

	created, err := scanBike(r.db.QueryRowContext(ctx, query,
		bike.ID, bike.ModelName, bike.Brand, bike.Type, bike.Price, bike.StockQuantity))
	if err != nil {
		return nil, mapError("bike", err)
	}
	return created, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE id = $1`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, bikeID))
	if err != nil {
		return nil, mapError("bike", err)
	}
	return bike, nil
}

func (r *BikeRepository) ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error) {
	order, err := orderBy(filter.Sort, bikeSort)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bikeColumns + ` FROM bikes`
	var args []interface{}
	if filter.StockBelow != nil {
		query += ` WHERE stock_quantity < $1`
		args = append(args, *filter.StockBelow)
	}
	query += order + limitClause(filter.Limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError("bike", err)
	}
	defer rows.Close()

	bikes := []*domain.Bike{}
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET
			model_name = COALESCE($1, model_name),
			brand = COALESCE($2, brand),
			type = COALESCE($3, type),
			price = COALESCE($4::numeric, price),
			stock_quantity = COALESCE($5::integer, stock_quantity),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query,
		patch.ModelName,
		patch.Brand,
		patch.Type,
		patch.Price,
		patch.StockQuantity,
		bikeID,
	))
	if err != nil {
		return nil, mapError("bike", err)
	}
	return bike, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bikes WHERE id = $1`, bikeID)
	if err != nil {
		return mapError("bike", err)
	}
	return expectRows("bike", result)
}

func (r *BikeRepository) CountBikes(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "bike", `SELECT COUNT(*) FROM bikes`)
}

func (r *BikeRepository) CountBikesStockBelow(ctx context.Context, threshold int) (int64, error) {
	return countRows(ctx, r.db, "bike", `SELECT COUNT(*) FROM bikes WHERE stock_quantity < $1`, threshold)
}

// AdjustStock is one UPDATE so concurrent sales of the same bike cannot
// overwrite each other. There is no lower bound on the result.
func (r *BikeRepository) AdjustStock(ctx context.Context, bikeID uuid.UUID, delta int) (*domain.Bike, error) {
	query := `UPDATE bikes
		SET stock_quantity = stock_quantity + $1,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, delta, bikeID))
	if err != nil {
		return nil, mapError("bike", err)
	}
	return bike, nil
}
