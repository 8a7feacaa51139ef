package ports

import (
	"context"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
	ListCustomers(ctx context.Context, opts domain.ListOptions) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID uuid.UUID) error
	CountCustomers(ctx context.Context) (int64, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, opts domain.ListOptions) ([]*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, patch domain.CustomerPatch) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type SupplierRepository interface {
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID uuid.UUID, patch domain.SupplierPatch) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID uuid.UUID) error
}

type SupplierService interface {
	CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error)
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplierID string, patch domain.SupplierPatch) (*domain.Supplier, error)
	DeleteSupplier(ctx context.Context, supplierID string) error
}

type EmployeeRepository interface {
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error)
	ListEmployees(ctx context.Context, opts domain.ListOptions) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID uuid.UUID, patch domain.EmployeePatch) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error
}

type EmployeeService interface {
	CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListEmployees(ctx context.Context, opts domain.ListOptions) ([]*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, employeeID string) error
}
