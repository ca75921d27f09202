package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

type MaintenanceService interface {
	ScheduleCleanup(ctx context.Context, tenantID string, beforeDate time.Time) (dto.CleanupResponse, error)
}

type RateLimitEventService interface {
	List(ctx context.Context, tenantID string, limit int) ([]domain.RateLimitEvent, error)
}

type MaintenanceHandler struct {
	*BaseHandler
	maintenance MaintenanceService
	events      RateLimitEventService
}

func NewMaintenanceHandler(maintenance MaintenanceService, events RateLimitEventService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance, events: events}
}

// Cleanup godoc
// @Summary Schedule cleanup operation
// @Description Enqueues a cleanup job that purges rate-limit events, search history and expired sessions older than the date
// @Tags maintenance
// @Produce json
// @Param before_date query string true "Purge records before this date (ISO 8601 or YYYY-MM-DD)"
// @Success 202 {object} dto.CleanupResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/maintenance/cleanup [delete]
func (h *MaintenanceHandler) Cleanup(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	beforeDateStr := c.Query("before_date")
	if beforeDateStr == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date parameter is required"})
		return
	}

	beforeDate, err := utils.ParseUserTime(beforeDateStr, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid before_date format: " + err.Error()})
		return
	}

	if beforeDate.After(time.Now()) {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "before_date cannot be in the future"})
		return
	}

	resp, err := h.maintenance.ScheduleCleanup(h.RequestCtx(c), tenantID, beforeDate)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "Failed to schedule cleanup: " + err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// ListRateLimitEvents godoc
// @Summary Recent throttled requests
// @Tags maintenance
// @Produce json
// @Param limit query int false "Max events" default(100)
// @Success 200 {array} domain.RateLimitEvent
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/rate-limit-events [get]
func (h *MaintenanceHandler) ListRateLimitEvents(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	events, err := h.events.List(h.RequestCtx(c), tenantID, queryInt(c, "limit", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, events)
}
