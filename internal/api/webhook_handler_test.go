package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type MockCalendarWebhookService struct {
	mock.Mock
}

func (m *MockCalendarWebhookService) HandleCalendarWebhook(ctx context.Context, req dto.CalendarWebhookRequest) dto.SuccessResponse {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.SuccessResponse)
}

type MockBillingService struct {
	mock.Mock
}

func (m *MockBillingService) HandleStripeEvent(ctx context.Context, event dto.StripeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type WebhookHandlerTestSuite struct {
	suite.Suite
	calendar *MockCalendarWebhookService
	billing  *MockBillingService
	handler  *WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	s.calendar = new(MockCalendarWebhookService)
	s.billing = new(MockBillingService)
	s.handler = NewWebhookHandler(s.calendar, s.billing, logger.NewNopLogger())
}

func TestWebhookHandler(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestCalendarWebhook_UnknownEventStillOK() {
	// Arrange
	req := dto.CalendarWebhookRequest{Type: "event.deleted", Event: dto.CalendarEvent{ID: "evt_unknown"}}
	s.calendar.On("HandleCalendarWebhook", mock.Anything, req).
		Return(dto.SuccessResponse{Success: false, Error: "booking not found"})

	c, w := newTestContext(http.MethodPost, "/api/calendar/webhook", req)

	// Act
	s.handler.CalendarWebhook(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.SuccessResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.False(response.Success)
	s.Equal("booking not found", response.Error)
}

func (s *WebhookHandlerTestSuite) TestCalendarWebhook_MissingType() {
	c, w := newTestContext(http.MethodPost, "/api/calendar/webhook", `{"event":{"id":"evt_1"}}`)

	s.handler.CalendarWebhook(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.calendar.AssertNotCalled(s.T(), "HandleCalendarWebhook", mock.Anything, mock.Anything)
}

func (s *WebhookHandlerTestSuite) TestStripeWebhook_MissingSignature() {
	c, w := newTestContext(http.MethodPost, "/api/stripe/webhook", `{"id":"evt_1","type":"checkout.session.completed"}`)

	s.handler.StripeWebhook(c)

	s.Equal(http.StatusBadRequest, w.Code)
	s.billing.AssertNotCalled(s.T(), "HandleStripeEvent", mock.Anything, mock.Anything)
}

func (s *WebhookHandlerTestSuite) TestStripeWebhook_InvalidPayload() {
	c, w := newTestContext(http.MethodPost, "/api/stripe/webhook", `not-json`)
	c.Request.Header.Set("stripe-signature", "t=1,v1=abc")

	s.handler.StripeWebhook(c)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WebhookHandlerTestSuite) TestStripeWebhook_ReceivedEvenWhenHandlingFails() {
	// Arrange
	s.billing.On("HandleStripeEvent", mock.Anything, mock.MatchedBy(func(e dto.StripeEvent) bool {
		return e.ID == "evt_1" && e.Type == "customer.subscription.deleted"
	})).Return(errors.New("tenant not found"))

	c, w := newTestContext(http.MethodPost, "/api/stripe/webhook",
		`{"id":"evt_1","type":"customer.subscription.deleted","data":{"object":{"id":"sub_1","customer":"cus_1"}}}`)
	c.Request.Header.Set("stripe-signature", "t=1,v1=abc")

	// Act
	s.handler.StripeWebhook(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	s.JSONEq(`{"received":true}`, w.Body.String())
	s.billing.AssertExpectations(s.T())
}
