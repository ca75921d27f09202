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

type PricingService interface {
	Create(ctx context.Context, tenantID string, req dto.CreatePricingRuleRequest) (*domain.PricingRule, error)
	Get(ctx context.Context, id string) (*domain.PricingRule, error)
	List(ctx context.Context, tenantID string, activeOnly bool) ([]domain.PricingRule, error)
	Update(ctx context.Context, id string, req dto.UpdatePricingRuleRequest) (*domain.PricingRule, error)
	Delete(ctx context.Context, id string) error
}

type PricingHandler struct {
	*BaseHandler
	service PricingService
}

func NewPricingHandler(service PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

func pricingErrorStatus(err error) int {
	if errors.Is(err, service.ErrPricingRuleNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// CreatePricingRule godoc
// @Summary Create a pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Param body body dto.CreatePricingRuleRequest true "Pricing rule"
// @Success 201 {object} domain.PricingRule
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/pricing-rules [post]
func (h *PricingHandler) CreatePricingRule(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.CreatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	rule, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// ListPricingRules godoc
// @Summary List pricing rules
// @Tags pricing
// @Produce json
// @Param active query bool false "Only active rules"
// @Success 200 {array} domain.PricingRule
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/pricing-rules [get]
func (h *PricingHandler) ListPricingRules(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	rules, err := h.service.List(h.RequestCtx(c), tenantID, c.Query("active") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// GetPricingRule godoc
// @Summary Get a pricing rule
// @Tags pricing
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Success 200 {object} domain.PricingRule
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/pricing-rules/{id} [get]
func (h *PricingHandler) GetPricingRule(c *gin.Context) {
	rule, err := h.service.Get(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		c.JSON(pricingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// UpdatePricingRule godoc
// @Summary Update a pricing rule
// @Tags pricing
// @Accept json
// @Produce json
// @Param id path string true "Pricing rule ID"
// @Param body body dto.UpdatePricingRuleRequest true "Fields to change"
// @Success 200 {object} domain.PricingRule
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/pricing-rules/{id} [patch]
func (h *PricingHandler) UpdatePricingRule(c *gin.Context) {
	var req dto.UpdatePricingRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	rule, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		c.JSON(pricingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeletePricingRule godoc
// @Summary Delete a pricing rule
// @Tags pricing
// @Param id path string true "Pricing rule ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/pricing-rules/{id} [delete]
func (h *PricingHandler) DeletePricingRule(c *gin.Context) {
	if err := h.service.Delete(h.RequestCtx(c), c.Param("id")); err != nil {
		c.JSON(pricingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
