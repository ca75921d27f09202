package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type SearchService interface {
	SearchBookings(ctx context.Context, userID string, filter *domain.BookingSearchFilter) (dto.BookingSearchResponse, error)
	History(ctx context.Context, tenantID, userID string, limit int) ([]domain.SearchHistory, error)
	ClearHistory(ctx context.Context, tenantID, userID string) (int64, error)
}

type SearchHandler struct {
	*BaseHandler
	service SearchService
}

func NewSearchHandler(service SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

// SearchBookings godoc
// @Summary Full-text booking search
// @Description Searches customer, vehicle and notes fields of the tenant's bookings and records the query in the caller's history
// @Tags search
// @Produce json
// @Param q query string true "Search text"
// @Param status query string false "Filter by status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.BookingSearchResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/search [get]
func (h *SearchHandler) SearchBookings(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "q is required"})
		return
	}

	result, err := h.service.SearchBookings(h.RequestCtx(c), userID, &domain.BookingSearchFilter{
		TenantID: tenantID,
		Query:    query,
		Status:   c.Query("status"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 0),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListHistory godoc
// @Summary Recent searches
// @Tags search
// @Produce json
// @Param limit query int false "Max entries" default(20)
// @Success 200 {array} domain.SearchHistory
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/search/history [get]
func (h *SearchHandler) ListHistory(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	history, err := h.service.History(h.RequestCtx(c), tenantID, userID, queryInt(c, "limit", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// ClearHistory godoc
// @Summary Clear search history
// @Tags search
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/search/history [delete]
func (h *SearchHandler) ClearHistory(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	deleted, err := h.service.ClearHistory(h.RequestCtx(c), tenantID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
