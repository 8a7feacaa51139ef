package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale references its customer and bike by plain id. Nothing guarantees
// either still exists.
type Sale struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  string          `json:"customer_id" validate:"required,max=36"`
	BikeID      string          `json:"bike_id" validate:"required,max=36"`
	Quantity    int             `json:"quantity" validate:"min=1"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	SaleDate    time.Time       `json:"sale_date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SalePatch struct {
	CustomerID  *string `validate:"omitempty,min=1,max=36"`
	BikeID      *string `validate:"omitempty,min=1,max=36"`
	Quantity    *int    `validate:"omitempty,min=1"`
	TotalAmount *decimal.Decimal
	SaleDate    *time.Time
}

type SaleView struct {
	Sale
	Customer Reference[Customer]
	Bike     Reference[Bike]
}

type Purchase struct {
	ID           uuid.UUID       `json:"id"`
	SupplierID   string          `json:"supplier_id" validate:"required,max=36"`
	BikeID       string          `json:"bike_id" validate:"required,max=36"`
	Quantity     int             `json:"quantity" validate:"min=1"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	PurchaseDate time.Time       `json:"purchase_date"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type PurchasePatch struct {
	SupplierID   *string `validate:"omitempty,min=1,max=36"`
	BikeID       *string `validate:"omitempty,min=1,max=36"`
	Quantity     *int    `validate:"omitempty,min=1"`
	UnitCost     *decimal.Decimal
	TotalCost    *decimal.Decimal
	PurchaseDate *time.Time
}

type PurchaseView struct {
	Purchase
	Supplier Reference[Supplier]
	Bike     Reference[Bike]
}

type ServiceStatus string

const (
	ServicePending    ServiceStatus = "pending"
	ServiceInProgress ServiceStatus = "in_progress"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCancelled  ServiceStatus = "cancelled"
)

// ServiceOrder is a workshop job. BikeID is optional: a nil BikeID means the
// job was never tied to a bike.
type ServiceOrder struct {
	ID          uuid.UUID       `json:"id"`
	CustomerID  string          `json:"customer_id" validate:"required,max=36"`
	BikeID      *string         `json:"bike_id" validate:"omitempty,max=36"`
	ServiceType string          `json:"service_type" validate:"required,max=100"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost"`
	ServiceDate time.Time       `json:"service_date"`
	Status      ServiceStatus   `json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ServiceOrderPatch struct {
	CustomerID  *string `validate:"omitempty,min=1,max=36"`
	BikeID      *string `validate:"omitempty,max=36"`
	ClearBike   bool
	ServiceType *string `validate:"omitempty,min=1,max=100"`
	Description *string
	Cost        *decimal.Decimal
	ServiceDate *time.Time
	Status      *ServiceStatus `validate:"omitempty,oneof=pending in_progress completed cancelled"`
}

type ServiceOrderFilter struct {
	ListOptions
	Status *ServiceStatus
}

type ServiceOrderView struct {
	ServiceOrder
	Customer Reference[Customer]
	Bike     Reference[Bike]
}
