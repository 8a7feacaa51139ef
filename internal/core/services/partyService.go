package services

import (
	"context"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CustomerService struct {
	customerRepo ports.CustomerRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewCustomerService(customerRepo ports.CustomerRepository, logger ports.LoggerPort, validate *validator.Validate) *CustomerService {
	return &CustomerService{customerRepo: customerRepo, logger: logger, validate: validate}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := s.validate.Struct(customer); err != nil {
		s.logger.Error("Customer validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}

	created, err := s.customerRepo.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Failed to create customer", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Customer created successfully", map[string]interface{}{
		"customer_id": created.ID,
	})
	return created, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	id, err := parseID("customer", customerID)
	if err != nil {
		return nil, err
	}
	customer, err := s.customerRepo.GetCustomerByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]*domain.Customer, error) {
	customers, err := s.customerRepo.ListCustomers(ctx, opts)
	if err != nil {
		s.logger.Error("Failed to list customers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return customers, nil
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, patch domain.CustomerPatch) (*domain.Customer, error) {
	id, err := parseID("customer", customerID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	updated, err := s.customerRepo.UpdateCustomer(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return nil, err
	}

	s.logger.Info("Customer updated successfully", map[string]interface{}{
		"customer_id": customerID,
	})
	return updated, nil
}

// DeleteCustomer does not touch sales or services referencing the customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := parseID("customer", customerID)
	if err != nil {
		return err
	}
	if err := s.customerRepo.DeleteCustomer(ctx, id); err != nil {
		s.logger.Error("Failed to delete customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		return err
	}

	s.logger.Info("Customer deleted successfully", map[string]interface{}{
		"customer_id": customerID,
	})
	return nil
}

type SupplierService struct {
	supplierRepo ports.SupplierRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewSupplierService(supplierRepo ports.SupplierRepository, logger ports.LoggerPort, validate *validator.Validate) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, logger: logger, validate: validate}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	if err := s.validate.Struct(supplier); err != nil {
		s.logger.Error("Supplier validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}
	if supplier.ID == uuid.Nil {
		supplier.ID = uuid.New()
	}

	created, err := s.supplierRepo.CreateSupplier(ctx, supplier)
	if err != nil {
		s.logger.Error("Failed to create supplier", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Supplier created successfully", map[string]interface{}{
		"supplier_id": created.ID,
	})
	return created, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	id, err := parseID("supplier", supplierID)
	if err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.GetSupplierByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get supplier", map[string]interface{}{
			"error":       err.Error(),
			"supplier_id": supplierID,
		})
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]*domain.Supplier, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, opts)
	if err != nil {
		s.logger.Error("Failed to list suppliers", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID string, patch domain.SupplierPatch) (*domain.Supplier, error) {
	id, err := parseID("supplier", supplierID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	updated, err := s.supplierRepo.UpdateSupplier(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update supplier", map[string]interface{}{
			"error":       err.Error(),
			"supplier_id": supplierID,
		})
		return nil, err
	}

	s.logger.Info("Supplier updated successfully", map[string]interface{}{
		"supplier_id": supplierID,
	})
	return updated, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	id, err := parseID("supplier", supplierID)
	if err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, id); err != nil {
		s.logger.Error("Failed to delete supplier", map[string]interface{}{
			"error":       err.Error(),
			"supplier_id": supplierID,
		})
		return err
	}

	s.logger.Info("Supplier deleted successfully", map[string]interface{}{
		"supplier_id": supplierID,
	})
	return nil
}

type EmployeeService struct {
	employeeRepo ports.EmployeeRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewEmployeeService(employeeRepo ports.EmployeeRepository, logger ports.LoggerPort, validate *validator.Validate) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo, logger: logger, validate: validate}
}

func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if err := s.validate.Struct(employee); err != nil {
		s.logger.Error("Employee validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, validationError(err)
	}
	if employee.Salary.IsNegative() {
		return nil, domain.ValidationError("salary must not be negative")
	}
	if time.Time(employee.HireDate).IsZero() {
		return nil, domain.ValidationError("hire_date is required")
	}
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}

	created, err := s.employeeRepo.CreateEmployee(ctx, employee)
	if err != nil {
		s.logger.Error("Failed to create employee", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Employee created successfully", map[string]interface{}{
		"employee_id": created.ID,
		"position":    created.Position,
	})
	return created, nil
}

func (s *EmployeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	id, err := parseID("employee", employeeID)
	if err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.GetEmployeeByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get employee", map[string]interface{}{
			"error":       err.Error(),
			"employee_id": employeeID,
		})
		return nil, err
	}
	return employee, nil
}

func (s *EmployeeService) ListEmployees(ctx context.Context, opts domain.ListOptions) ([]*domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, opts)
	if err != nil {
		s.logger.Error("Failed to list employees", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return employees, nil
}

func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) (*domain.Employee, error) {
	id, err := parseID("employee", employeeID)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if patch.Salary != nil && patch.Salary.IsNegative() {
		return nil, domain.ValidationError("salary must not be negative")
	}

	updated, err := s.employeeRepo.UpdateEmployee(ctx, id, patch)
	if err != nil {
		s.logger.Error("Failed to update employee", map[string]interface{}{
			"error":       err.Error(),
			"employee_id": employeeID,
		})
		return nil, err
	}

	s.logger.Info("Employee updated successfully", map[string]interface{}{
		"employee_id": employeeID,
	})
	return updated, nil
}

func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	id, err := parseID("employee", employeeID)
	if err != nil {
		return err
	}
	if err := s.employeeRepo.DeleteEmployee(ctx, id); err != nil {
		s.logger.Error("Failed to delete employee", map[string]interface{}{
			"error":       err.Error(),
			"employee_id": employeeID,
		})
		return err
	}

	s.logger.Info("Employee deleted successfully", map[string]interface{}{
		"employee_id": employeeID,
	})
	return nil
}
