package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/llm"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
)

type AnalysisService interface {
	Request(ctx context.Context, tenantID, userID string, req dto.CreateAnalysisRequest) (*domain.VehicleAnalysis, error)
	Get(ctx context.Context, id string) (*domain.VehicleAnalysis, error)
	List(ctx context.Context, tenantID string, limit, offset int) ([]domain.VehicleAnalysis, error)
	FindSimilar(ctx context.Context, tenantID, userID string, req dto.SimilarAnalysisRequest) ([]dto.SimilarAnalysisResponse, error)
}

type ChatService interface {
	Complete(ctx context.Context, req dto.ChatRequest) (dto.ChatResponse, error)
	Fallback(req dto.ChatRequest) dto.ChatResponse
}

type AnalysisHandler struct {
	*BaseHandler
	analyses AnalysisService
	chat     ChatService
}

func NewAnalysisHandler(analyses AnalysisService, chat ChatService) *AnalysisHandler {
	return &AnalysisHandler{analyses: analyses, chat: chat}
}

// llmErrorStatus maps provider failures to gateway errors
func llmErrorStatus(err error) int {
	switch {
	case errors.Is(err, llm.ErrInferenceTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, llm.ErrProviderUnavailable), errors.Is(err, llm.ErrInvalidResponse):
		return http.StatusBadGateway
	case errors.Is(err, llm.ErrNotConfigured):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// RequestAnalysis godoc
// @Summary Request a vehicle analysis
// @Description Queues an AI assessment of the vehicle and its photos. Progress is written to the returned stream
// @Tags analyses
// @Accept json
// @Produce json
// @Param body body dto.CreateAnalysisRequest true "Vehicle and photos"
// @Success 202 {object} dto.AnalysisResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/analyses [post]
func (h *AnalysisHandler) RequestAnalysis(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.CreateAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	analysis, err := h.analyses.Request(h.RequestCtx(c), tenantID, userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, dto.FromAnalysis(analysis))
}

// ListAnalyses godoc
// @Summary List vehicle analyses
// @Tags analyses
// @Produce json
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Offset"
// @Success 200 {array} dto.AnalysisResponse
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/analyses [get]
func (h *AnalysisHandler) ListAnalyses(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	analyses, err := h.analyses.List(h.RequestCtx(c), tenantID, queryInt(c, "limit", 20), queryInt(c, "offset", 0))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromAnalyses(analyses))
}

// GetAnalysis godoc
// @Summary Get a vehicle analysis
// @Tags analyses
// @Produce json
// @Param id path string true "Analysis ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/analyses/{id} [get]
func (h *AnalysisHandler) GetAnalysis(c *gin.Context) {
	analysis, err := h.analyses.Get(h.RequestCtx(c), c.Param("id"))
	if errors.Is(err, service.ErrAnalysisNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromAnalysis(analysis))
}

// FindSimilar godoc
// @Summary Similar analyses
// @Description Ranks the tenant's completed analyses by embedding similarity to the query
// @Tags analyses
// @Accept json
// @Produce json
// @Param body body dto.SimilarAnalysisRequest true "Query"
// @Success 200 {array} dto.SimilarAnalysisResponse
// @Failure 400 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/analyses/similar [post]
func (h *AnalysisHandler) FindSimilar(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}

	var req dto.SimilarAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	matches, err := h.analyses.FindSimilar(h.RequestCtx(c), tenantID, userID, req)
	if err != nil {
		c.JSON(llmErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, matches)
}

// Chat godoc
// @Summary Chat with the assistant
// @Tags chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Conversation"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/chat [post]
func (h *AnalysisHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.chat.Complete(h.RequestCtx(c), req)
	if err != nil {
		c.JSON(llmErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChatFallback godoc
// @Summary Canned assistant reply
// @Description Answers without calling a model
// @Tags chat
// @Accept json
// @Produce json
// @Param body body dto.ChatRequest true "Conversation"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.Error
// @Router /api/chat/fallback [post]
func (h *AnalysisHandler) ChatFallback(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.chat.Fallback(req))
}
