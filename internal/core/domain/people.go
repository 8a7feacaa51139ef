package domain

import (
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Customer struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email,max=254"`
	Phone     string    `json:"phone" validate:"max=20"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerPatch struct {
	Name    *string `validate:"omitempty,min=1,max=100"`
	Email   *string `validate:"omitempty,email,max=254"`
	Phone   *string `validate:"omitempty,max=20"`
	Address *string
}

type Supplier struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name" validate:"required,max=100"`
	Email         string    `json:"email" validate:"required,email,max=254"`
	Phone         string    `json:"phone" validate:"max=20"`
	Address       string    `json:"address"`
	ContactPerson string    `json:"contact_person" validate:"max=100"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type SupplierPatch struct {
	Name          *string `validate:"omitempty,min=1,max=100"`
	Email         *string `validate:"omitempty,email,max=254"`
	Phone         *string `validate:"omitempty,max=20"`
	Address       *string
	ContactPerson *string `validate:"omitempty,max=100"`
}

type Employee struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name" validate:"required,max=100"`
	Email     string          `json:"email" validate:"required,email,max=254"`
	Phone     string          `json:"phone" validate:"max=20"`
	Position  string          `json:"position" validate:"required,max=50"`
	Salary    decimal.Decimal `json:"salary"`
	HireDate  strfmt.Date     `json:"hire_date"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type EmployeePatch struct {
	Name     *string `validate:"omitempty,min=1,max=100"`
	Email    *string `validate:"omitempty,email,max=254"`
	Phone    *string `validate:"omitempty,max=20"`
	Position *string `validate:"omitempty,min=1,max=50"`
	Salary   *decimal.Decimal
	HireDate *strfmt.Date
}
