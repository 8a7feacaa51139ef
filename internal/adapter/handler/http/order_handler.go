package http

import (
	"net/http"
	"time"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type SaleHandler struct {
	saleService ports.SaleService
	logger      ports.LoggerPort
}

type SaleRequest struct {
	CustomerID  string          `json:"customer_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	BikeID      string          `json:"bike_id" example:"123e4567-e89b-12d3-a456-426614174001"`
	Quantity    int             `json:"quantity" example:"1"`
	TotalAmount decimal.Decimal `json:"total_amount" swaggertype:"string" example:"1299.99"`
	SaleDate    time.Time       `json:"sale_date" example:"2024-05-01T12:00:00Z"`
}

type UpdateSaleRequest struct {
	CustomerID  *string          `json:"customer_id,omitempty"`
	BikeID      *string          `json:"bike_id,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	TotalAmount *decimal.Decimal `json:"total_amount,omitempty" swaggertype:"string"`
	SaleDate    *time.Time       `json:"sale_date,omitempty"`
}

func NewSaleHandler(saleService ports.SaleService, logger ports.LoggerPort) *SaleHandler {
	return &SaleHandler{saleService: saleService, logger: logger}
}

// @Summary Оформить продажу
// @Description Создание продажи. Остаток байка уменьшается на quantity, если байк существует.
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body SaleRequest true "Данные продажи"
// @Success 201 {object} CreateSaleResponse
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var req SaleRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, adj, err := h.saleService.CreateSale(c.Request.Context(), &domain.Sale{
		CustomerID:  req.CustomerID,
		BikeID:      req.BikeID,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		SaleDate:    req.SaleDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "create sale", err)
		return
	}

	c.JSON(http.StatusCreated, CreateSaleResponse{
		SaleResponse:  newSaleResponse(view),
		StockAdjusted: adj != nil && adj.Applied,
	})
}

// @Summary Получить продажу
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID продажи"
// @Success 200 {object} SaleResponse
// @Failure 404 {object} errorResponse "Продажа не найдена"
// @Router /api/sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	view, err := h.saleService.GetSaleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get sale", err)
		return
	}
	c.JSON(http.StatusOK, newSaleResponse(view))
}

// @Summary Список продаж
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} listResponse[SaleResponse]
// @Router /api/sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list sales", err)
		return
	}
	views, err := h.saleService.ListSales(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, h.logger, "list sales", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(newSaleResponses(views)))
}

// @Summary Обновить продажу
// @Description Частичное обновление. Остаток байка не меняется.
// @Tags sales
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID продажи"
// @Param request body UpdateSaleRequest true "Изменяемые поля"
// @Success 200 {object} SaleResponse
// @Failure 404 {object} errorResponse "Продажа не найдена"
// @Router /api/sales/{id} [put]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	var req UpdateSaleRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, err := h.saleService.UpdateSale(c.Request.Context(), c.Param("id"), domain.SalePatch{
		CustomerID:  req.CustomerID,
		BikeID:      req.BikeID,
		Quantity:    req.Quantity,
		TotalAmount: req.TotalAmount,
		SaleDate:    req.SaleDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "update sale", err)
		return
	}
	c.JSON(http.StatusOK, newSaleResponse(view))
}

// @Summary Удалить продажу
// @Tags sales
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID продажи"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Продажа не найдена"
// @Router /api/sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	if err := h.saleService.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete sale", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Sale deleted successfully"})
}

type PurchaseHandler struct {
	purchaseService ports.PurchaseService
	logger          ports.LoggerPort
}

type PurchaseRequest struct {
	SupplierID   string          `json:"supplier_id" example:"123e4567-e89b-12d3-a456-426614174002"`
	BikeID       string          `json:"bike_id" example:"123e4567-e89b-12d3-a456-426614174001"`
	Quantity     int             `json:"quantity" example:"5"`
	UnitCost     decimal.Decimal `json:"unit_cost" swaggertype:"string" example:"800.00"`
	TotalCost    decimal.Decimal `json:"total_cost" swaggertype:"string" example:"4000.00"`
	PurchaseDate time.Time       `json:"purchase_date" example:"2024-05-01T12:00:00Z"`
}

type UpdatePurchaseRequest struct {
	SupplierID   *string          `json:"supplier_id,omitempty"`
	BikeID       *string          `json:"bike_id,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	UnitCost     *decimal.Decimal `json:"unit_cost,omitempty" swaggertype:"string"`
	TotalCost    *decimal.Decimal `json:"total_cost,omitempty" swaggertype:"string"`
	PurchaseDate *time.Time       `json:"purchase_date,omitempty"`
}

func NewPurchaseHandler(purchaseService ports.PurchaseService, logger ports.LoggerPort) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService, logger: logger}
}

// @Summary Оформить закупку
// @Description Создание закупки. Остаток байка увеличивается на quantity, если байк существует.
// @Tags purchases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Данные закупки"
// @Success 201 {object} CreatePurchaseResponse
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/purchases [post]
func (h *PurchaseHandler) CreatePurchase(c *gin.Context) {
	var req PurchaseRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, adj, err := h.purchaseService.CreatePurchase(c.Request.Context(), &domain.Purchase{
		SupplierID:   req.SupplierID,
		BikeID:       req.BikeID,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		TotalCost:    req.TotalCost,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "create purchase", err)
		return
	}

	c.JSON(http.StatusCreated, CreatePurchaseResponse{
		PurchaseResponse: newPurchaseResponse(view),
		StockAdjusted:    adj != nil && adj.Applied,
	})
}

// @Summary Получить закупку
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID закупки"
// @Success 200 {object} PurchaseResponse
// @Failure 404 {object} errorResponse "Закупка не найдена"
// @Router /api/purchases/{id} [get]
func (h *PurchaseHandler) GetPurchase(c *gin.Context) {
	view, err := h.purchaseService.GetPurchaseByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get purchase", err)
		return
	}
	c.JSON(http.StatusOK, newPurchaseResponse(view))
}

// @Summary Список закупок
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Success 200 {object} listResponse[PurchaseResponse]
// @Router /api/purchases [get]
func (h *PurchaseHandler) ListPurchases(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list purchases", err)
		return
	}
	views, err := h.purchaseService.ListPurchases(c.Request.Context(), opts)
	if err != nil {
		handleServiceError(c, h.logger, "list purchases", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(newPurchaseResponses(views)))
}

// @Summary Обновить закупку
// @Description Частичное обновление. Остаток байка не меняется.
// @Tags purchases
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID закупки"
// @Param request body UpdatePurchaseRequest true "Изменяемые поля"
// @Success 200 {object} PurchaseResponse
// @Failure 404 {object} errorResponse "Закупка не найдена"
// @Router /api/purchases/{id} [put]
func (h *PurchaseHandler) UpdatePurchase(c *gin.Context) {
	var req UpdatePurchaseRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, err := h.purchaseService.UpdatePurchase(c.Request.Context(), c.Param("id"), domain.PurchasePatch{
		SupplierID:   req.SupplierID,
		BikeID:       req.BikeID,
		Quantity:     req.Quantity,
		UnitCost:     req.UnitCost,
		TotalCost:    req.TotalCost,
		PurchaseDate: req.PurchaseDate,
	})
	if err != nil {
		handleServiceError(c, h.logger, "update purchase", err)
		return
	}
	c.JSON(http.StatusOK, newPurchaseResponse(view))
}

// @Summary Удалить закупку
// @Tags purchases
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID закупки"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Закупка не найдена"
// @Router /api/purchases/{id} [delete]
func (h *PurchaseHandler) DeletePurchase(c *gin.Context) {
	if err := h.purchaseService.DeletePurchase(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete purchase", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Purchase deleted successfully"})
}

type ServiceOrderHandler struct {
	orderService ports.ServiceOrderService
	logger       ports.LoggerPort
}

type ServiceRequest struct {
	CustomerID  string          `json:"customer_id" example:"123e4567-e89b-12d3-a456-426614174000"`
	BikeID      *string         `json:"bike_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174001"`
	ServiceType string          `json:"service_type" example:"brake adjustment"`
	Description string          `json:"description"`
	Cost        decimal.Decimal `json:"cost" swaggertype:"string" example:"25.00"`
	ServiceDate time.Time       `json:"service_date" example:"2024-05-01T12:00:00Z"`
	Status      string          `json:"status,omitempty" enums:"pending,in_progress,completed,cancelled"`
}

type UpdateServiceRequest struct {
	CustomerID *string `json:"customer_id,omitempty"`
	// An empty bike_id detaches the bike.
	BikeID      *string          `json:"bike_id,omitempty"`
	ServiceType *string          `json:"service_type,omitempty"`
	Description *string          `json:"description,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty" swaggertype:"string"`
	ServiceDate *time.Time       `json:"service_date,omitempty"`
	Status      *string          `json:"status,omitempty" enums:"pending,in_progress,completed,cancelled"`
}

func NewServiceOrderHandler(orderService ports.ServiceOrderService, logger ports.LoggerPort) *ServiceOrderHandler {
	return &ServiceOrderHandler{orderService: orderService, logger: logger}
}

// @Summary Создать заказ на обслуживание
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ServiceRequest true "Данные заказа"
// @Success 201 {object} ServiceResponse
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/services [post]
func (h *ServiceOrderHandler) CreateService(c *gin.Context) {
	var req ServiceRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	view, err := h.orderService.CreateServiceOrder(c.Request.Context(), &domain.ServiceOrder{
		CustomerID:  req.CustomerID,
		BikeID:      req.BikeID,
		ServiceType: req.ServiceType,
		Description: req.Description,
		Cost:        req.Cost,
		ServiceDate: req.ServiceDate,
		Status:      domain.ServiceStatus(req.Status),
	})
	if err != nil {
		handleServiceError(c, h.logger, "create service", err)
		return
	}
	c.JSON(http.StatusCreated, newServiceResponse(view))
}

// @Summary Получить заказ на обслуживание
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} ServiceResponse
// @Failure 404 {object} errorResponse "Заказ не найден"
// @Router /api/services/{id} [get]
func (h *ServiceOrderHandler) GetService(c *gin.Context) {
	view, err := h.orderService.GetServiceOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get service", err)
		return
	}
	c.JSON(http.StatusOK, newServiceResponse(view))
}

// @Summary Список заказов на обслуживание
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Param status query string false "Фильтр по статусу" Enums(pending, in_progress, completed, cancelled)
// @Success 200 {object} listResponse[ServiceResponse]
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /api/services [get]
func (h *ServiceOrderHandler) ListServices(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list services", err)
		return
	}

	filter := domain.ServiceOrderFilter{ListOptions: opts}
	if status := c.Query("status"); status != "" {
		s := domain.ServiceStatus(status)
		filter.Status = &s
	}

	views, err := h.orderService.ListServiceOrders(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, h.logger, "list services", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(newServiceResponses(views)))
}

// @Summary Обновить заказ на обслуживание
// @Tags services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID заказа"
// @Param request body UpdateServiceRequest true "Изменяемые поля"
// @Success 200 {object} ServiceResponse
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Заказ не найден"
// @Router /api/services/{id} [put]
func (h *ServiceOrderHandler) UpdateService(c *gin.Context) {
	var req UpdateServiceRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	patch := domain.ServiceOrderPatch{
		CustomerID:  req.CustomerID,
		BikeID:      req.BikeID,
		ServiceType: req.ServiceType,
		Description: req.Description,
		Cost:        req.Cost,
		ServiceDate: req.ServiceDate,
	}
	if req.Status != nil {
		s := domain.ServiceStatus(*req.Status)
		patch.Status = &s
	}

	view, err := h.orderService.UpdateServiceOrder(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		handleServiceError(c, h.logger, "update service", err)
		return
	}
	c.JSON(http.StatusOK, newServiceResponse(view))
}

// @Summary Удалить заказ на обслуживание
// @Tags services
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID заказа"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse "Заказ не найден"
// @Router /api/services/{id} [delete]
func (h *ServiceOrderHandler) DeleteService(c *gin.Context) {
	if err := h.orderService.DeleteServiceOrder(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete service", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Message: "Service deleted successfully"})
}
