package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const stripeSignatureHeader = "stripe-signature"

type CalendarWebhookService interface {
	HandleCalendarWebhook(ctx context.Context, req dto.CalendarWebhookRequest) dto.SuccessResponse
}

type BillingService interface {
	HandleStripeEvent(ctx context.Context, event dto.StripeEvent) error
}

// WebhookHandler receives callbacks from the calendar and payment providers.
// Neither route sits behind the auth middleware.
type WebhookHandler struct {
	*BaseHandler
	calendar CalendarWebhookService
	billing  BillingService
	logger   *logger.Logger
}

func NewWebhookHandler(calendar CalendarWebhookService, billing BillingService, logger *logger.Logger) *WebhookHandler {
	return &WebhookHandler{calendar: calendar, billing: billing, logger: logger}
}

// CalendarWebhook godoc
// @Summary Calendar provider callback
// @Description Applies event.created, event.updated and event.deleted callbacks to bookings. Always answers 200 with the outcome
// @Tags webhooks
// @Accept json
// @Produce json
// @Param body body dto.CalendarWebhookRequest true "Calendar event"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.Error
// @Router /api/calendar/webhook [post]
func (h *WebhookHandler) CalendarWebhook(c *gin.Context) {
	var req dto.CalendarWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.calendar.HandleCalendarWebhook(h.RequestCtx(c), req))
}

// StripeWebhook godoc
// @Summary Stripe webhook
// @Description Updates tenant billing from checkout and subscription events. The signature header must be present but is not verified
// @Tags webhooks
// @Accept json
// @Produce json
// @Param stripe-signature header string true "Stripe signature"
// @Success 200 {object} dto.StripeWebhookResponse
// @Failure 400 {object} dto.Error
// @Router /api/stripe/webhook [post]
func (h *WebhookHandler) StripeWebhook(c *gin.Context) {
	if c.GetHeader(stripeSignatureHeader) == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "missing stripe-signature header"})
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	var event dto.StripeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "invalid event payload"})
		return
	}

	if err := h.billing.HandleStripeEvent(h.RequestCtx(c), event); err != nil {
		h.logger.Error("Failed to apply stripe event", err,
			zap.String("event_id", event.ID),
			zap.String("type", event.Type),
		)
	}

	c.JSON(http.StatusOK, dto.StripeWebhookResponse{Received: true})
}
