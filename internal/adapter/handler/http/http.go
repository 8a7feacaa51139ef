package http

import (
	"net/http"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
}

type BikeRequest struct {
	ModelName     string          `json:"model_name" example:"Stumpjumper"`
	Brand         string          `json:"brand" example:"Specialized"`
	Type          string          `json:"type" example:"mtb"`
	Price         decimal.Decimal `json:"price" swaggertype:"string" example:"1299.99"`
	StockQuantity int             `json:"stock_quantity" example:"10"`
}

type UpdateBikeRequest struct {
	ModelName     *string          `json:"model_name,omitempty" example:"Stumpjumper EVO"`
	Brand         *string          `json:"brand,omitempty" example:"Specialized"`
	Type          *string          `json:"type,omitempty" example:"mtb"`
	Price         *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"1399.99"`
	StockQuantity *int             `json:"stock_quantity,omitempty" example:"12"`
}

func NewBikeHandler(bikeService ports.BikeService, logger ports.LoggerPort) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
	}
}

// @Summary Создать байк
// @Description Добавление модели байка в каталог магазина
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Данные байка"
// @Success 201 {object} domain.Bike "Байк создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /api/bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	var req BikeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	bike := &domain.Bike{
		ModelName:     req.ModelName,
		Brand:         req.Brand,
		Type:          domain.BikeType(req.Type),
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	createdBike, err := h.bikeService.CreateBike(c.Request.Context(), bike)
	if err != nil {
		handleServiceError(c, h.logger, "create bike", err)
		return
	}

	c.JSON(http.StatusCreated, createdBike)
}

// @Summary Получить байк
// @Description Получение байка по ID
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} domain.Bike "Байк найден"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, h.logger, "get bike", err)
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Список байков
// @Description Список байков, по умолчанию сначала новые
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param sort query string false "Поле сортировки" example:"price"
// @Param order query string false "asc или desc"
// @Param limit query int false "Максимум записей"
// @Param max_stock query int false "Только байки с остатком не больше"
// @Success 200 {object} listResponse[domain.Bike]
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 401 {object} errorResponse "Не авторизован"
// @Router /api/bikes [get]
func (h *BikeHandler) ListBikes(c *gin.Context) {
	opts, err := listOptions(c)
	if err != nil {
		handleServiceError(c, h.logger, "list bikes", err)
		return
	}
	maxStock, err := optionalIntQuery(c, "max_stock")
	if err != nil {
		handleServiceError(c, h.logger, "list bikes", err)
		return
	}

	filter := domain.BikeFilter{ListOptions: opts}
	if maxStock != nil {
		below := *maxStock + 1
		filter.StockBelow = &below
	}

	bikes, err := h.bikeService.ListBikes(c.Request.Context(), filter)
	if err != nil {
		handleServiceError(c, h.logger, "list bikes", err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(bikes))
}

// @Summary Обновить байк
// @Description Частичное обновление байка
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "ID байка"
// @Param request body UpdateBikeRequest true "Изменяемые поля"
// @Success 200 {object} domain.Bike "Байк обновлён"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	var req UpdateBikeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	patch := domain.BikePatch{
		ModelName:     req.ModelName,
		Brand:         req.Brand,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	if req.Type != nil {
		t := domain.BikeType(*req.Type)
		patch.Type = &t
	}

	bike, err := h.bikeService.UpdateBike(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		handleServiceError(c, h.logger, "update bike", err)
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Удалить байк
// @Description Удаление байка. Продажи и закупки с этим байком остаются.
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse "Байк удалён"
// @Failure 403 {object} errorResponse "Доступ запрещен"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /api/bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	if err := h.bikeService.DeleteBike(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, h.logger, "delete bike", err)
		return
	}

	c.JSON(http.StatusOK, successResponse{Message: "Bike deleted successfully"})
}
