package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
)

type NotificationService interface {
	Get(ctx context.Context, tenantID, userID string) (*domain.NotificationPreference, error)
	Upsert(ctx context.Context, tenantID, userID string, req dto.UpdateNotificationPreferenceRequest) (*domain.NotificationPreference, error)
}

type NotificationHandler struct {
	*BaseHandler
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetPreferences godoc
// @Summary Notification preferences
// @Description Returns the caller's preferences, or the defaults with a null id when none were saved
// @Tags notifications
// @Produce json
// @Success 200 {object} dto.NotificationPreferenceResponse
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/notifications/preferences [get]
func (h *NotificationHandler) GetPreferences(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	pref, err := h.service.Get(h.RequestCtx(c), tenantID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromNotificationPreference(pref))
}

// UpdatePreferences godoc
// @Summary Save notification preferences
// @Tags notifications
// @Accept json
// @Produce json
// @Param body body dto.UpdateNotificationPreferenceRequest true "Preferences"
// @Success 200 {object} dto.NotificationPreferenceResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/notifications/preferences [put]
func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.UpdateNotificationPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	pref, err := h.service.Upsert(h.RequestCtx(c), tenantID, userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromNotificationPreference(pref))
}
