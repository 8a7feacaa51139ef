package postgres

import (
	"context"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"

	"github.com/google/uuid"
)

type CustomerRepository struct {
	db DBTX
}

func NewCustomerRepository(db DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const customerColumns = `id, name, email, phone, address, created_at, updated_at`

var customerSort = sortColumns("name", "email")

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CustomerRepository) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	query := `INSERT INTO customers (id, name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + customerColumns

	created, err := scanCustomer(r.db.QueryRowContext(ctx, query,
		customer.ID, customer.Name, customer.Email, customer.Phone, customer.Address))
	if err != nil {
		return nil, mapError("customer", err)
	}
	return created, nil
}

func (r *CustomerRepository) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	c, err := scanCustomer(r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, customerID))
	if err != nil {
		return nil, mapError("customer", err)
	}
	return c, nil
}

func (r *CustomerRepository) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]*domain.Customer, error) {
	order, err := orderBy(opts.Sort, customerSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers`+order+limitClause(opts.Limit))
	if err != nil {
		return nil, mapError("customer", err)
	}
	defer rows.Close()

	customers := []*domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *CustomerRepository) UpdateCustomer(ctx context.Context, customerID uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error) {
	query := `UPDATE customers
		SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING ` + customerColumns

	c, err := scanCustomer(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.Email, patch.Phone, patch.Address, customerID))
	if err != nil {
		return nil, mapError("customer", err)
	}
	return c, nil
}

func (r *CustomerRepository) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, customerID)
	if err != nil {
		return mapError("customer", err)
	}
	return expectRows("customer", result)
}

func (r *CustomerRepository) CountCustomers(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, "customer", `SELECT COUNT(*) FROM customers`)
}

type SupplierRepository struct {
	db DBTX
}

func NewSupplierRepository(db DBTX) *SupplierRepository {
	return &SupplierRepository{db: db}
}

const supplierColumns = `id, name, email, phone, address, contact_person, created_at, updated_at`

var supplierSort = sortColumns("name", "email", "contact_person")

func scanSupplier(row rowScanner) (*domain.Supplier, error) {
	s := &domain.Supplier{}
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Address, &s.ContactPerson, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SupplierRepository) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	query := `INSERT INTO suppliers (id, name, email, phone, address, contact_person)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + supplierColumns

	created, err := scanSupplier(r.db.QueryRowContext(ctx, query,
		supplier.ID, supplier.Name, supplier.Email, supplier.Phone, supplier.Address, supplier.ContactPerson))
	if err != nil {
		return nil, mapError("supplier", err)
	}
	return created, nil
}

func (r *SupplierRepository) GetSupplierByID(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	s, err := scanSupplier(r.db.QueryRowContext(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, supplierID))
	if err != nil {
		return nil, mapError("supplier", err)
	}
	return s, nil
}

func (r *SupplierRepository) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]*domain.Supplier, error) {
	order, err := orderBy(opts.Sort, supplierSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+supplierColumns+` FROM suppliers`+order+limitClause(opts.Limit))
	if err != nil {
		return nil, mapError("supplier", err)
	}
	defer rows.Close()

	suppliers := []*domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) UpdateSupplier(ctx context.Context, supplierID uuid.UUID, patch domain.SupplierPatch) (*domain.Supplier, error) {
	query := `UPDATE suppliers
		SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			address = COALESCE($4, address),
			contact_person = COALESCE($5, contact_person),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $6
		RETURNING ` + supplierColumns

	s, err := scanSupplier(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.Email, patch.Phone, patch.Address, patch.ContactPerson, supplierID))
	if err != nil {
		return nil, mapError("supplier", err)
	}
	return s, nil
}

func (r *SupplierRepository) DeleteSupplier(ctx context.Context, supplierID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM suppliers WHERE id = $1`, supplierID)
	if err != nil {
		return mapError("supplier", err)
	}
	return expectRows("supplier", result)
}

type EmployeeRepository struct {
	db DBTX
}

func NewEmployeeRepository(db DBTX) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

const employeeColumns = `id, name, email, phone, position, salary, hire_date, created_at, updated_at`

var employeeSort = sortColumns("name", "email", "position", "salary", "hire_date")

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	e := &domain.Employee{}
	err := row.Scan(&e.ID, &e.Name, &e.Email, &e.Phone, &e.Position, &e.Salary, &e.HireDate, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepository) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	query := `INSERT INTO employees (id, name, email, phone, position, salary, hire_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(r.db.QueryRowContext(ctx, query,
		employee.ID, employee.Name, employee.Email, employee.Phone, employee.Position, employee.Salary, employee.HireDate))
	if err != nil {
		return nil, mapError("employee", err)
	}
	return created, nil
}

func (r *EmployeeRepository) GetEmployeeByID(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error) {
	e, err := scanEmployee(r.db.QueryRowContext(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, employeeID))
	if err != nil {
		return nil, mapError("employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) ListEmployees(ctx context.Context, opts domain.ListOptions) ([]*domain.Employee, error) {
	order, err := orderBy(opts.Sort, employeeSort)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+employeeColumns+` FROM employees`+order+limitClause(opts.Limit))
	if err != nil {
		return nil, mapError("employee", err)
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *EmployeeRepository) UpdateEmployee(ctx context.Context, employeeID uuid.UUID, patch domain.EmployeePatch) (*domain.Employee, error) {
	query := `UPDATE employees
		SET
			name = COALESCE($1, name),
			email = COALESCE($2, email),
			phone = COALESCE($3, phone),
			position = COALESCE($4, position),
			salary = COALESCE($5::numeric, salary),
			hire_date = COALESCE($6::date, hire_date),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING ` + employeeColumns

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query,
		patch.Name, patch.Email, patch.Phone, patch.Position, patch.Salary, patch.HireDate, employeeID))
	if err != nil {
		return nil, mapError("employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, employeeID)
	if err != nil {
		return mapError("employee", err)
	}
	return expectRows("employee", result)
}
