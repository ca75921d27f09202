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

type TextStreamService interface {
	Get(ctx context.Context, id string) (*domain.TextStream, error)
}

type StreamHandler struct {
	*BaseHandler
	service TextStreamService
}

func NewStreamHandler(service TextStreamService) *StreamHandler {
	return &StreamHandler{service: service}
}

// GetStream godoc
// @Summary Poll a text stream
// @Description Returns the text produced so far and the stream status
// @Tags streams
// @Produce json
// @Param id path string true "Stream ID"
// @Success 200 {object} domain.TextStream
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/streams/{id} [get]
func (h *StreamHandler) GetStream(c *gin.Context) {
	stream, err := h.service.Get(h.RequestCtx(c), c.Param("id"))
	if errors.Is(err, service.ErrStreamNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, stream)
}
