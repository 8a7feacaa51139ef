package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/sm8ta/webike_shop_microservice/internal/core/domain"
	"github.com/sm8ta/webike_shop_microservice/internal/core/ports"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error" example:"bike not found"`
}

type successResponse struct {
	Message string `json:"message" example:"Deleted successfully"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newListResponse[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Count: len(items)}
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, errorResponse{Error: message})
}

func abortWithError(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// handleServiceError maps domain errors to status codes. Causes of internal
// errors are logged and never sent to the client.
func handleServiceError(c *gin.Context, logger ports.LoggerPort, action string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Failed to "+action, map[string]interface{}{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}

func bindJSON(c *gin.Context, logger ports.LoggerPort, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		logger.Warn("Failed JSON parse", map[string]interface{}{
			"error": err.Error(),
			"path":  c.FullPath(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return false
	}
	return true
}

// listOptions reads ?sort=&order=&limit=. Without sort the listing is newest
// first; an explicit sort field defaults to ascending.
func listOptions(c *gin.Context) (domain.ListOptions, error) {
	opts := domain.NewListOptions(domain.NewestFirst, 0)

	if field := strings.TrimSpace(c.Query("sort")); field != "" {
		opts.Sort = domain.SortSpec{Field: field, Direction: domain.Asc}
	}
	if order := strings.ToLower(strings.TrimSpace(c.Query("order"))); order != "" {
		switch domain.SortDirection(order) {
		case domain.Asc, domain.Desc:
			opts.Sort.Direction = domain.SortDirection(order)
		default:
			return opts, domain.ValidationError("order must be asc or desc")
		}
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return opts, domain.ValidationError("limit must be a non-negative integer")
		}
		opts.Limit = limit
	}
	return opts, nil
}

func optionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, domain.ValidationError("%s must be an integer", name)
	}
	return &n, nil
}
