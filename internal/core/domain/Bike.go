package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// swagger:model domain.Bike
type Bike struct {
	ID            uuid.UUID       `json:"id"`
	ModelName     string          `json:"model_name" validate:"required,max=100"`
	Brand         string          `json:"brand" validate:"required,max=50"`
	Type          BikeType        `json:"type" validate:"required,max=50"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type BikeType string

const (
	BMX      BikeType = "bmx"
	MTB      BikeType = "mtb"
	Road     BikeType = "road"
	Hybrid   BikeType = "hybrid"
	Electric BikeType = "electric"
)

// DisplayName is how sales, purchases and services refer to the bike.
func (b *Bike) DisplayName() string {
	return b.Brand + " " + b.ModelName
}

// BikePatch carries a partial update; nil fields are left untouched.
type BikePatch struct {
	ModelName     *string          `validate:"omitempty,min=1,max=100"`
	Brand         *string          `validate:"omitempty,min=1,max=50"`
	Type          *BikeType        `validate:"omitempty,min=1,max=50"`
	Price         *decimal.Decimal `validate:"-"`
	StockQuantity *int
}

type BikeFilter struct {
	ListOptions
	// StockBelow keeps bikes whose stock is strictly less than the value.
	StockBelow *int
}
