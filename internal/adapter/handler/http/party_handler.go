package http

import (
	"net/http"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/shopspring/decimal"
)

type CustomerHandler struct {
	customerService ports.CustomerService
	logger          ports.LoggerPort
}

type CustomerRequest struct {
	Name    string `json:"name" example:"Anna Petrova"`
	Email   string `json:"email" example:"anna@example.com"`
	Phone   string `json:"phone" example:"+7 900 000-00-00"`
	Address string `json:"address" example:"Lenina 1"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

func NewCustomerHandler(customerService ports.CustomerService, logger ports.LoggerPort) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, logger: logger}
}

// @Summary Создать клиента
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Данные клиента"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &domain.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleServiceError(c, h.logger, "create customer", err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// @Summary Получить клиента
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} domain.Customer
// @Failure 404 {object} errorResponse "Клиент не найден"
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary Список клиентов
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} listResponse[domain.Customer]
// @Router /api/customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list customers", err)
		return
	}
	customers, err := h.customerService.ListCustomers(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, h.logger, "list customers", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(customers))
}

// @Summary Обновить клиента
// @Tags customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID клиента"
// @Param request body UpdateCustomerRequest true "Изменяемые поля"
// @Success 200 {object} domain.Customer
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Клиент не найден"
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var req UpdateCustomerRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), c.Param("id"), domain.CustomerPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		handleServiceError(c, h.logger, "update customer", err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// @Summary Удалить клиента
// @Tags customers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID клиента"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Клиент не найден"
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	if err := h.customerService.DeleteCustomer(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete customer", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Customer deleted successfully"})
}

type SupplierHandler struct {
	supplierService ports.SupplierService
	logger          ports.LoggerPort
}

type SupplierRequest struct {
	Name          string `json:"name" example:"Velo Distribution"`
	Email         string `json:"email" example:"sales@velo.example"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	ContactPerson string `json:"contact_person" example:"Ivan Sidorov"`
}

type UpdateSupplierRequest struct {
	Name          *string `json:"name,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
}

func NewSupplierHandler(supplierService ports.SupplierService, logger ports.LoggerPort) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService, logger: logger}
}

// @Summary Создать поставщика
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SupplierRequest true "Данные поставщика"
// @Success 201 {object} domain.Supplier
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/suppliers [post]
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request.Context(), &domain.Supplier{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		handleServiceError(c, h.logger, "create supplier", err)
		return
	}
	c.JSON(http.StatusCreated, supplier)
}

// @Summary Получить поставщика
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID поставщика"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} errorResponse "Поставщик не найден"
// @Router /api/suppliers/{id} [get]
func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	supplier, err := h.supplierService.GetSupplierByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get supplier", err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// @Summary Список поставщиков
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} listResponse[domain.Supplier]
// @Router /api/suppliers [get]
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list suppliers", err)
		return
	}
	suppliers, err := h.supplierService.ListSuppliers(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, h.logger, "list suppliers", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(suppliers))
}

// @Summary Обновить поставщика
// @Tags suppliers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID поставщика"
// @Param request body UpdateSupplierRequest true "Изменяемые поля"
// @Success 200 {object} domain.Supplier
// @Failure 404 {object} errorResponse "Поставщик не найден"
// @Router /api/suppliers/{id} [put]
func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	var req UpdateSupplierRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request.Context(), c.Param("id"), domain.SupplierPatch{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ContactPerson: req.ContactPerson,
	})
	if err != nil {
		handleServiceError(c, h.logger, "update supplier", err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

// @Summary Удалить поставщика
// @Tags suppliers
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID поставщика"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Поставщик не найден"
// @Router /api/suppliers/{id} [delete]
func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
	if err := h.supplierService.DeleteSupplier(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete supplier", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Supplier deleted successfully"})
}

type EmployeeHandler struct {
	employeeService ports.EmployeeService
	logger          ports.LoggerPort
}

type EmployeeRequest struct {
	Name     string          `json:"name" example:"Oleg Ivanov"`
	Email    string          `json:"email" example:"oleg@webike.example"`
	Phone    string          `json:"phone"`
	Position string          `json:"position" example:"mechanic"`
	Salary   decimal.Decimal `json:"salary" swaggertype:"string" example:"55000.00"`
	HireDate strfmt.Date     `json:"hire_date" swaggertype:"string" format:"date" example:"2024-03-01"`
}

type UpdateEmployeeRequest struct {
	Name     *string          `json:"name,omitempty"`
	Email    *string          `json:"email,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Position *string          `json:"position,omitempty"`
	Salary   *decimal.Decimal `json:"salary,omitempty" swaggertype:"string"`
	HireDate *strfmt.Date     `json:"hire_date,omitempty" swaggertype:"string" format:"date"`
}

func NewEmployeeHandler(employeeService ports.EmployeeService, logger ports.LoggerPort) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService, logger: logger}
}

// @Summary Создать сотрудника
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body EmployeeRequest true "Данные сотрудника"
// @Success 201 {object} domain.Employee
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/employees [post]
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req EmployeeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), &domain.Employee{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: req.HireDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "create employee", err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// @Summary Получить сотрудника
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID сотрудника"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} errorResponse "Сотрудник не найден"
// @Router /api/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get employee", err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// @Summary Список сотрудников
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} listResponse[domain.Employee]
// @Router /api/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list employees", err)
		return
	}
	employees, err := h.employeeService.ListEmployees(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, h.logger, "list employees", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(employees))
}

// @Summary Обновить сотрудника
// @Tags employees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID сотрудника"
// @Param request body UpdateEmployeeRequest true "Изменяемые поля"
// @Success 200 {object} domain.Employee
// @Failure 404 {object} errorResponse "Сотрудник не найден"
// @Router /api/employees/{id} [put]
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req UpdateEmployeeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), domain.EmployeePatch{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Position: req.Position,
		Salary:   req.Salary,
		HireDate: req.HireDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "update employee", err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// @Summary Удалить сотрудника
// @Tags employees
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID сотрудника"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Сотрудник не найден"
// @Router /api/employees/{id} [delete]
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	if err := h.employeeService.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete employee", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Employee deleted successfully"})
}
