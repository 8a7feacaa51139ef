package services

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// memStore: every repository plus TxManager, in memory
// =====================

type memStore struct {
	mu  sync.Mutex
	now time.Time

	bikes     map[uuid.UUID]domain.Bike
	customers map[uuid.UUID]domain.Customer
	suppliers map[uuid.UUID]domain.Supplier
	employees map[uuid.UUID]domain.Employee
	sales     map[uuid.UUID]domain.Sale
	purchases map[uuid.UUID]domain.Purchase
	orders    map[uuid.UUID]domain.ServiceOrder

	// injected failures
	adjustErr error
	lookupErr error
	countErr  error
}

var (
	_ ports.BikeRepository         = (*memStore)(nil)
	_ ports.CustomerRepository     = (*memStore)(nil)
	_ ports.SupplierRepository     = (*memStore)(nil)
	_ ports.EmployeeRepository     = (*memStore)(nil)
	_ ports.SaleRepository         = (*memStore)(nil)
	_ ports.PurchaseRepository     = (*memStore)(nil)
	_ ports.ServiceOrderRepository = (*memStore)(nil)
	_ ports.TxManager              = (*memStore)(nil)
	_ ports.TxRepos                = (*memStore)(nil)
)

func newMemStore() *memStore {
	return &memStore{
		now:       time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		bikes:     map[uuid.UUID]domain.Bike{},
		customers: map[uuid.UUID]domain.Customer{},
		suppliers: map[uuid.UUID]domain.Supplier{},
		employees: map[uuid.UUID]domain.Employee{},
		sales:     map[uuid.UUID]domain.Sale{},
		purchases: map[uuid.UUID]domain.Purchase{},
		orders:    map[uuid.UUID]domain.ServiceOrder{},
	}
}

// stamp hands out strictly increasing creation times.
func (s *memStore) stamp() time.Time {
	s.now = s.now.Add(time.Minute)
	return s.now
}

func (s *memStore) setNow(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = t.Add(-time.Minute)
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *memStore) WithinTx(ctx context.Context, fn func(r ports.TxRepos) error) error {
	s.mu.Lock()
	snap := &memStore{
		bikes:     cloneMap(s.bikes),
		customers: cloneMap(s.customers),
		suppliers: cloneMap(s.suppliers),
		employees: cloneMap(s.employees),
		sales:     cloneMap(s.sales),
		purchases: cloneMap(s.purchases),
		orders:    cloneMap(s.orders),
	}
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.bikes, s.customers, s.suppliers, s.employees = snap.bikes, snap.customers, snap.suppliers, snap.employees
		s.sales, s.purchases, s.orders = snap.sales, snap.purchases, snap.orders
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *memStore) WithinSnapshot(ctx context.Context, fn func(r ports.TxRepos) error) error {
	return fn(s)
}

func (s *memStore) Bikes() ports.BikeRepository                 { return s }
func (s *memStore) Customers() ports.CustomerRepository         { return s }
func (s *memStore) Sales() ports.SaleRepository                 { return s }
func (s *memStore) Purchases() ports.PurchaseRepository         { return s }
func (s *memStore) ServiceOrders() ports.ServiceOrderRepository { return s }

// sortAndLimit understands created_at only, which is all the services ask for.
func sortAndLimit[T any](items []T, createdAt func(T) time.Time, opts domain.ListOptions) ([]T, error) {
	field := opts.Sort.Field
	if field == "" {
		field = "created_at"
	}
	if field != "created_at" {
		return nil, domain.ValidationError("cannot sort by %q", field)
	}
	sort.Slice(items, func(i, j int) bool {
		if opts.Sort.Direction == domain.Asc {
			return createdAt(items[i]).Before(createdAt(items[j]))
		}
		return createdAt(items[i]).After(createdAt(items[j]))
	})
	if opts.Limit > 0 && len(items) > opts.Limit {
		items = items[:opts.Limit]
	}
	return items, nil
}

// ---- bikes

func (s *memStore) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := *bike
	b.CreatedAt = s.stamp()
	b.UpdatedAt = b.CreatedAt
	s.bikes[b.ID] = b
	return &b, nil
}

func (s *memStore) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	b, ok := s.bikes[bikeID]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	return &b, nil
}

func (s *memStore) ListBikes(ctx context.Context, filter domain.BikeFilter) ([]*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Bike
	for _, b := range s.bikes {
		b := b
		if filter.StockBelow != nil && b.StockQuantity >= *filter.StockBelow {
			continue
		}
		out = append(out, &b)
	}
	return sortAndLimit(out, func(b *domain.Bike) time.Time { return b.CreatedAt }, filter.ListOptions)
}

func (s *memStore) UpdateBike(ctx context.Context, bikeID uuid.UUID, patch domain.BikePatch) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bikes[bikeID]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	if patch.ModelName != nil {
		b.ModelName = *patch.ModelName
	}
	if patch.Brand != nil {
		b.Brand = *patch.Brand
	}
	if patch.Type != nil {
		b.Type = *patch.Type
	}
	if patch.Price != nil {
		b.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		b.StockQuantity = *patch.StockQuantity
	}
	b.UpdatedAt = s.stamp()
	s.bikes[bikeID] = b
	return &b, nil
}

func (s *memStore) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bikes[bikeID]; !ok {
		return domain.NotFoundError("bike")
	}
	delete(s.bikes, bikeID)
	return nil
}

func (s *memStore) CountBikes(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.countErr != nil {
		return 0, s.countErr
	}
	return int64(len(s.bikes)), nil
}

func (s *memStore) CountBikesStockBelow(ctx context.Context, threshold int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, b := range s.bikes {
		if b.StockQuantity < threshold {
			n++
		}
	}
	return n, nil
}

func (s *memStore) AdjustStock(ctx context.Context, bikeID uuid.UUID, delta int) (*domain.Bike, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.adjustErr != nil {
		return nil, s.adjustErr
	}
	b, ok := s.bikes[bikeID]
	if !ok {
		return nil, domain.NotFoundError("bike")
	}
	b.StockQuantity += delta
	b.UpdatedAt = s.stamp()
	s.bikes[bikeID] = b
	return &b, nil
}

// ---- customers

func (s *memStore) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.customers {
		if existing.Email == customer.Email {
			return nil, domain.ValidationError("customer with this email already exists")
		}
	}
	c := *customer
	c.CreatedAt = s.stamp()
	c.UpdatedAt = c.CreatedAt
	s.customers[c.ID] = c
	return &c, nil
}

func (s *memStore) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	c, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFoundError("customer")
	}
	return &c, nil
}

func (s *memStore) ListCustomers(ctx context.Context, opts domain.ListOptions) ([]*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Customer
	for _, c := range s.customers {
		c := c
		out = append(out, &c)
	}
	return sortAndLimit(out, func(c *domain.Customer) time.Time { return c.CreatedAt }, opts)
}

func (s *memStore) UpdateCustomer(ctx context.Context, customerID uuid.UUID, patch domain.CustomerPatch) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[customerID]
	if !ok {
		return nil, domain.NotFoundError("customer")
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	c.UpdatedAt = s.stamp()
	s.customers[customerID] = c
	return &c, nil
}

func (s *memStore) DeleteCustomer(ctx context.Context, customerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.customers[customerID]; !ok {
		return domain.NotFoundError("customer")
	}
	delete(s.customers, customerID)
	return nil
}

func (s *memStore) CountCustomers(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.customers)), nil
}

// ---- suppliers

func (s *memStore) CreateSupplier(ctx context.Context, supplier *domain.Supplier) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp := *supplier
	sp.CreatedAt = s.stamp()
	sp.UpdatedAt = sp.CreatedAt
	s.suppliers[sp.ID] = sp
	return &sp, nil
}

func (s *memStore) GetSupplierByID(ctx context.Context, supplierID uuid.UUID) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.suppliers[supplierID]
	if !ok {
		return nil, domain.NotFoundError("supplier")
	}
	return &sp, nil
}

func (s *memStore) ListSuppliers(ctx context.Context, opts domain.ListOptions) ([]*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Supplier
	for _, sp := range s.suppliers {
		sp := sp
		out = append(out, &sp)
	}
	return sortAndLimit(out, func(sp *domain.Supplier) time.Time { return sp.CreatedAt }, opts)
}

func (s *memStore) UpdateSupplier(ctx context.Context, supplierID uuid.UUID, patch domain.SupplierPatch) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.suppliers[supplierID]
	if !ok {
		return nil, domain.NotFoundError("supplier")
	}
	if patch.Name != nil {
		sp.Name = *patch.Name
	}
	if patch.ContactPerson != nil {
		sp.ContactPerson = *patch.ContactPerson
	}
	sp.UpdatedAt = s.stamp()
	s.suppliers[supplierID] = sp
	return &sp, nil
}

func (s *memStore) DeleteSupplier(ctx context.Context, supplierID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[supplierID]; !ok {
		return domain.NotFoundError("supplier")
	}
	delete(s.suppliers, supplierID)
	return nil
}

// ---- employees

func (s *memStore) CreateEmployee(ctx context.Context, employee *domain.Employee) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := *employee
	e.CreatedAt = s.stamp()
	e.UpdatedAt = e.CreatedAt
	s.employees[e.ID] = e
	return &e, nil
}

func (s *memStore) GetEmployeeByID(ctx context.Context, employeeID uuid.UUID) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[employeeID]
	if !ok {
		return nil, domain.NotFoundError("employee")
	}
	return &e, nil
}

func (s *memStore) ListEmployees(ctx context.Context, opts domain.ListOptions) ([]*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Employee
	for _, e := range s.employees {
		e := e
		out = append(out, &e)
	}
	return sortAndLimit(out, func(e *domain.Employee) time.Time { return e.CreatedAt }, opts)
}

func (s *memStore) UpdateEmployee(ctx context.Context, employeeID uuid.UUID, patch domain.EmployeePatch) (*domain.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[employeeID]
	if !ok {
		return nil, domain.NotFoundError("employee")
	}
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.Salary != nil {
		e.Salary = *patch.Salary
	}
	if patch.HireDate != nil {
		e.HireDate = *patch.HireDate
	}
	e.UpdatedAt = s.stamp()
	s.employees[employeeID] = e
	return &e, nil
}

func (s *memStore) DeleteEmployee(ctx context.Context, employeeID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.employees[employeeID]; !ok {
		return domain.NotFoundError("employee")
	}
	delete(s.employees, employeeID)
	return nil
}

// ---- sales

func (s *memStore) CreateSale(ctx context.Context, sale *domain.Sale) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := *sale
	sl.CreatedAt = s.stamp()
	sl.UpdatedAt = sl.CreatedAt
	s.sales[sl.ID] = sl
	return &sl, nil
}

func (s *memStore) GetSaleByID(ctx context.Context, saleID uuid.UUID) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.sales[saleID]
	if !ok {
		return nil, domain.NotFoundError("sale")
	}
	return &sl, nil
}

func (s *memStore) ListSales(ctx context.Context, opts domain.ListOptions) ([]*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Sale
	for _, sl := range s.sales {
		sl := sl
		out = append(out, &sl)
	}
	return sortAndLimit(out, func(sl *domain.Sale) time.Time { return sl.CreatedAt }, opts)
}

func (s *memStore) UpdateSale(ctx context.Context, saleID uuid.UUID, patch domain.SalePatch) (*domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.sales[saleID]
	if !ok {
		return nil, domain.NotFoundError("sale")
	}
	if patch.CustomerID != nil {
		sl.CustomerID = *patch.CustomerID
	}
	if patch.BikeID != nil {
		sl.BikeID = *patch.BikeID
	}
	if patch.Quantity != nil {
		sl.Quantity = *patch.Quantity
	}
	if patch.TotalAmount != nil {
		sl.TotalAmount = *patch.TotalAmount
	}
	if patch.SaleDate != nil {
		sl.SaleDate = *patch.SaleDate
	}
	sl.UpdatedAt = s.stamp()
	s.sales[saleID] = sl
	return &sl, nil
}

func (s *memStore) DeleteSale(ctx context.Context, saleID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sales[saleID]; !ok {
		return domain.NotFoundError("sale")
	}
	delete(s.sales, saleID)
	return nil
}

func (s *memStore) CountSales(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.sales)), nil
}

func (s *memStore) SumSalesSince(ctx context.Context, since time.Time) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, sl := range s.sales {
		if !sl.CreatedAt.Before(since) {
			total = total.Add(sl.TotalAmount)
		}
	}
	return total, nil
}

// ---- purchases

func (s *memStore) CreatePurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := *purchase
	p.CreatedAt = s.stamp()
	p.UpdatedAt = p.CreatedAt
	s.purchases[p.ID] = p
	return &p, nil
}

func (s *memStore) GetPurchaseByID(ctx context.Context, purchaseID uuid.UUID) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[purchaseID]
	if !ok {
		return nil, domain.NotFoundError("purchase")
	}
	return &p, nil
}

func (s *memStore) ListPurchases(ctx context.Context, opts domain.ListOptions) ([]*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Purchase
	for _, p := range s.purchases {
		p := p
		out = append(out, &p)
	}
	return sortAndLimit(out, func(p *domain.Purchase) time.Time { return p.CreatedAt }, opts)
}

func (s *memStore) UpdatePurchase(ctx context.Context, purchaseID uuid.UUID, patch domain.PurchasePatch) (*domain.Purchase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.purchases[purchaseID]
	if !ok {
		return nil, domain.NotFoundError("purchase")
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.BikeID != nil {
		p.BikeID = *patch.BikeID
	}
	p.UpdatedAt = s.stamp()
	s.purchases[purchaseID] = p
	return &p, nil
}

func (s *memStore) DeletePurchase(ctx context.Context, purchaseID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.purchases[purchaseID]; !ok {
		return domain.NotFoundError("purchase")
	}
	delete(s.purchases, purchaseID)
	return nil
}

// ---- service orders

func (s *memStore) CreateServiceOrder(ctx context.Context, order *domain.ServiceOrder) (*domain.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := *order
	o.CreatedAt = s.stamp()
	o.UpdatedAt = o.CreatedAt
	s.orders[o.ID] = o
	return &o, nil
}

func (s *memStore) GetServiceOrderByID(ctx context.Context, orderID uuid.UUID) (*domain.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.NotFoundError("service")
	}
	return &o, nil
}

func (s *memStore) ListServiceOrders(ctx context.Context, filter domain.ServiceOrderFilter) ([]*domain.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.ServiceOrder
	for _, o := range s.orders {
		o := o
		if filter.Status != nil && o.Status != *filter.Status {
			continue
		}
		out = append(out, &o)
	}
	return sortAndLimit(out, func(o *domain.ServiceOrder) time.Time { return o.CreatedAt }, filter.ListOptions)
}

func (s *memStore) UpdateServiceOrder(ctx context.Context, orderID uuid.UUID, patch domain.ServiceOrderPatch) (*domain.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return nil, domain.NotFoundError("service")
	}
	if patch.ClearBike {
		o.BikeID = nil
	} else if patch.BikeID != nil {
		id := *patch.BikeID
		o.BikeID = &id
	}
	if patch.Status != nil {
		o.Status = *patch.Status
	}
	if patch.Cost != nil {
		o.Cost = *patch.Cost
	}
	o.UpdatedAt = s.stamp()
	s.orders[orderID] = o
	return &o, nil
}

func (s *memStore) DeleteServiceOrder(ctx context.Context, orderID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[orderID]; !ok {
		return domain.NotFoundError("service")
	}
	delete(s.orders, orderID)
	return nil
}

func (s *memStore) CountServiceOrders(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.orders)), nil
}

// =====================
// ambient fakes
// =====================

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type recordingLogger struct {
	nopLogger
	mu    sync.Mutex
	warns []string
}

func (l *recordingLogger) Warn(msg string, _ map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

var errCacheMiss = errors.New("cache miss")

type memCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	c.deleted = append(c.deleted, key)
	return nil
}

type EventsMock struct{ mock.Mock }

func (m *EventsMock) PublishStockAdjusted(ctx context.Context, adj domain.StockAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

type MetricsMock struct{ mock.Mock }

func (m *MetricsMock) RecordMetrics(c *gin.Context, start time.Time) {
	m.Called(c, start)
}

func (m *MetricsMock) RecordStockAdjustment(kind domain.StockChangeKind, applied bool) {
	m.Called(kind, applied)
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// =====================
// wiring
// =====================

type shop struct {
	store     *memStore
	cache     *memCache
	events    *EventsMock
	metrics   *MetricsMock
	clock     fixedClock
	bikes     *BikeService
	customers *CustomerService
	suppliers *SupplierService
	employees *EmployeeService
	sales     *SaleService
	purchases *PurchaseService
	orders    *ServiceOrderService
	dashboard *DashboardService
	resolver  *RefResolver
}

func newShop() *shop {
	return newShopWithLogger(nopLogger{})
}

func newShopWithLogger(logger ports.LoggerPort) *shop {
	store := newMemStore()
	cache := newMemCache()
	events := new(EventsMock)
	metrics := new(MetricsMock)
	events.On("PublishStockAdjusted", mock.Anything, mock.Anything).Return(nil).Maybe()
	metrics.On("RecordStockAdjustment", mock.Anything, mock.Anything).Return().Maybe()

	clock := fixedClock{t: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	validate := validator.New()
	resolver := NewRefResolver(store, store, store, logger)
	stock := NewStockRule(cache, events, metrics, logger, clock)

	return &shop{
		store:     store,
		cache:     cache,
		events:    events,
		metrics:   metrics,
		clock:     clock,
		bikes:     NewBikeService(store, logger, validate, cache),
		customers: NewCustomerService(store, logger, validate),
		suppliers: NewSupplierService(store, logger, validate),
		employees: NewEmployeeService(store, logger, validate),
		sales:     NewSaleService(store, store, resolver, stock, logger, validate),
		purchases: NewPurchaseService(store, store, resolver, stock, logger, validate),
		orders:    NewServiceOrderService(store, resolver, logger, validate),
		dashboard: NewDashboardService(store, store, store, store, resolver, clock, logger, DefaultDashboardSettings()),
		resolver:  resolver,
	}
}

func (s *shop) addBike(stock int) *domain.Bike {
	bike, err := s.bikes.CreateBike(context.Background(), &domain.Bike{
		ModelName:     "Stumpjumper",
		Brand:         "Specialized",
		Type:          domain.MTB,
		Price:         decimal.RequireFromString("1299.99"),
		StockQuantity: stock,
	})
	if err != nil {
		panic(err)
	}
	return bike
}

func (s *shop) addCustomer(email string) *domain.Customer {
	customer, err := s.customers.CreateCustomer(context.Background(), &domain.Customer{
		Name:  "Anna Petrova",
		Email: email,
	})
	if err != nil {
		panic(err)
	}
	return customer
}

func (s *shop) stockOf(id uuid.UUID) int {
	b, err := s.store.GetBikeByID(context.Background(), id)
	if err != nil {
		panic(err)
	}
	return b.StockQuantity
}

func saleDate() time.Time {
	return time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)
}
