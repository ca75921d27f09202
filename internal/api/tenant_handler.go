package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
)

type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*domain.Tenant, error)
	Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*domain.Tenant, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.TenantResponse, error)
	Dashboard(ctx context.Context, tenantID string) (*domain.DashboardStats, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

func tenantErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrTenantNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrTenantExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// CreateTenant godoc
// @Summary Create a new tenant
// @Description Create a new tenant. The slug is derived from the name when omitted
// @Tags tenants
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(tenantErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// ListTenants godoc
// @Summary List all tenants
// @Tags tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenant, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		c.JSON(tenantErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Patch the name, plan or rate limit of a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path string true "Tenant ID"
// @Param body body dto.UpdateTenantRequest true "Fields to change"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/tenants/{id} [patch]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	tenant, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		c.JSON(tenantErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Tags tenants
// @Param id path string true "Tenant ID"
// @Success 204
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		c.JSON(tenantErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetDashboard godoc
// @Summary Tenant dashboard
// @Description Booking counts by status, upcoming bookings, stored files and analyses for the caller's tenant
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/dashboard [get]
func (h *TenantHandler) GetDashboard(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	stats, err := h.service.Dashboard(h.RequestCtx(c), tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromDashboardStats(stats))
}
