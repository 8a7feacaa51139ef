package http

import (
	"net/http"

	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// DashboardHandler never returns partial data: any failure is an error response.
type DashboardHandler struct {
	dashboardService ports.DashboardService
	logger           ports.LoggerPort
}

func NewDashboardHandler(dashboardService ports.DashboardService, logger ports.LoggerPort) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger}
}

// @Summary Статистика магазина
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} errorResponse "Внутренняя ошибка сервера"
// @Router /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "compute dashboard stats", err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Байки с низким остатком
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listResponse[domain.Bike]
// @Router /api/dashboard/low-stock [get]
func (h *DashboardHandler) LowStock(c *gin.Context) {
	bikes, err := h.dashboardService.LowStockBikes(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list low stock bikes", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(bikes))
}

// @Summary Последние продажи
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listResponse[SaleResponse]
// @Router /api/dashboard/recent-sales [get]
func (h *DashboardHandler) RecentSales(c *gin.Context) {
	views, err := h.dashboardService.RecentSales(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list recent sales", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(newSaleResponses(views)))
}

// @Summary Ожидающие заказы на обслуживание
// @Tags dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} listResponse[ServiceResponse]
// @Router /api/dashboard/pending-services [get]
func (h *DashboardHandler) PendingServices(c *gin.Context) {
	views, err := h.dashboardService.PendingServices(c.Request.Context())
	if err != nil {
		handleServiceError(c, h.logger, "list pending services", err)
		return
	}
	c.JSON(http.StatusOK, newListResponse(newServiceResponses(views)))
}
