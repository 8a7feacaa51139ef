package http

import (
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Display names are null whenever the referenced record cannot be found.

type SaleResponse struct {
	ID           uuid.UUID       `json:"id"`
	CustomerID   string          `json:"customer_id"`
	BikeID       string          `json:"bike_id"`
	Quantity     int             `json:"quantity"`
	TotalAmount  decimal.Decimal `json:"total_amount" swaggertype:"string"`
	SaleDate     time.Time       `json:"sale_date"`
	CustomerName *string         `json:"customer_name"`
	BikeName     *string         `json:"bike_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type CreateSaleResponse struct {
	SaleResponse
	StockAdjusted bool `json:"stock_adjusted"`
}

type PurchaseResponse struct {
	ID           uuid.UUID       `json:"id"`
	SupplierID   string          `json:"supplier_id"`
	BikeID       string          `json:"bike_id"`
	Quantity     int             `json:"quantity"`
	UnitCost     decimal.Decimal `json:"unit_cost" swaggertype:"string"`
	TotalCost    decimal.Decimal `json:"total_cost" swaggertype:"string"`
	PurchaseDate time.Time       `json:"purchase_date"`
	SupplierName *string         `json:"supplier_name"`
	BikeName     *string         `json:"bike_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type CreatePurchaseResponse struct {
	PurchaseResponse
	StockAdjusted bool `json:"stock_adjusted"`
}

type ServiceResponse struct {
	ID           uuid.UUID            `json:"id"`
	CustomerID   string               `json:"customer_id"`
	BikeID       *string              `json:"bike_id"`
	ServiceType  string               `json:"service_type"`
	Description  string               `json:"description"`
	Cost         decimal.Decimal      `json:"cost" swaggertype:"string"`
	ServiceDate  time.Time            `json:"service_date"`
	Status       domain.ServiceStatus `json:"status"`
	CustomerName *string              `json:"customer_name"`
	BikeName     *string              `json:"bike_name"`
	// BikeReference tells a service with no bike apart from one whose bike is gone.
	BikeReference domain.RefState `json:"bike_reference" enums:"unset,dangling,resolved"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func bikeName(ref domain.Reference[domain.Bike]) *string {
	if !ref.Found() {
		return nil
	}
	name := ref.Target.DisplayName()
	return &name
}

func customerName(ref domain.Reference[domain.Customer]) *string {
	if !ref.Found() {
		return nil
	}
	return &ref.Target.Name
}

func supplierName(ref domain.Reference[domain.Supplier]) *string {
	if !ref.Found() {
		return nil
	}
	return &ref.Target.Name
}

func newSaleResponse(v *domain.SaleView) SaleResponse {
	return SaleResponse{
		ID:           v.ID,
		CustomerID:   v.CustomerID,
		BikeID:       v.BikeID,
		Quantity:     v.Quantity,
		TotalAmount:  v.TotalAmount,
		SaleDate:     v.SaleDate,
		CustomerName: customerName(v.Customer),
		BikeName:     bikeName(v.Bike),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func newSaleResponses(views []*domain.SaleView) []SaleResponse {
	out := make([]SaleResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newSaleResponse(v))
	}
	return out
}

func newPurchaseResponse(v *domain.PurchaseView) PurchaseResponse {
	return PurchaseResponse{
		ID:           v.ID,
		SupplierID:   v.SupplierID,
		BikeID:       v.BikeID,
		Quantity:     v.Quantity,
		UnitCost:     v.UnitCost,
		TotalCost:    v.TotalCost,
		PurchaseDate: v.PurchaseDate,
		SupplierName: supplierName(v.Supplier),
		BikeName:     bikeName(v.Bike),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func newPurchaseResponses(views []*domain.PurchaseView) []PurchaseResponse {
	out := make([]PurchaseResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newPurchaseResponse(v))
	}
	return out
}

func newServiceResponse(v *domain.ServiceOrderView) ServiceResponse {
	return ServiceResponse{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		BikeID:        v.BikeID,
		ServiceType:   v.ServiceType,
		Description:   v.Description,
		Cost:          v.Cost,
		ServiceDate:   v.ServiceDate,
		Status:        v.Status,
		CustomerName:  customerName(v.Customer),
		BikeName:      bikeName(v.Bike),
		BikeReference: v.Bike.State,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func newServiceResponses(views []*domain.ServiceOrderView) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, newServiceResponse(v))
	}
	return out
}
