package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DashboardStats struct {
	TotalBikes        int64           `json:"total_bikes"`
	TotalCustomers    int64           `json:"total_customers"`
	TotalSales        int64           `json:"total_sales"`
	TotalServices     int64           `json:"total_services"`
	LowStock          int64           `json:"low_stock"`
	RecentSalesAmount decimal.Decimal `json:"recent_sales_amount"`
}

type StockChangeKind string

const (
	StockChangeSale     StockChangeKind = "sale"
	StockChangePurchase StockChangeKind = "purchase"
)

// StockAdjustment records what a sale or purchase did to its bike.
// Applied is false when the bike reference did not resolve.
type StockAdjustment struct {
	Kind     StockChangeKind `json:"kind"`
	SourceID uuid.UUID       `json:"source_id"`
	BikeID   string          `json:"bike_id"`
	Delta    int             `json:"delta"`
	Applied  bool            `json:"applied"`
	NewStock *int            `json:"new_stock,omitempty"`
	At       time.Time       `json:"at"`
}
