package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

type BookingService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*domain.Booking, error)
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) (dto.BookingListResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, tenantID, id string) error
	Availability(ctx context.Context, tenantID, start, end string) (dto.AvailabilityResponse, error)
}

type BookingHandler struct {
	*BaseHandler
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func bookingErrorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidTimeRange), errors.Is(err, service.ErrInvalidBookingStatus):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateBooking godoc
// @Summary Create a booking
// @Description Creates a booking, queues it for search indexing and pushes it to the calendar when configured
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body dto.CreateBookingRequest true "Booking"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	booking, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, dto.FromBooking(booking))
}

// ListBookings godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param status query string false "Filter by status"
// @Param start_time query string false "Bookings starting at or after (RFC3339 or YYYY-MM-DD)"
// @Param end_time query string false "Bookings starting at or before (RFC3339 or YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} dto.BookingListResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	filter := domain.BookingFilter{
		TenantID: tenantID,
		Status:   c.Query("status"),
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 0),
	}
	if start := c.Query("start_time"); start != "" {
		millis, err := utils.ParseUserMillis(start, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.StartTime = millis
	}
	if end := c.Query("end_time"); end != "" {
		millis, err := utils.ParseUserMillis(end, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		filter.EndTime = millis
	}

	bookings, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking godoc
// @Summary Get a booking
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	booking, err := h.service.Get(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(booking))
}

// UpdateBookingStatus godoc
// @Summary Change booking status
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param body body dto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	booking, err := h.service.UpdateStatus(h.RequestCtx(c), c.Param("id"), req.Status)
	if err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(booking))
}

// CancelBooking godoc
// @Summary Cancel a booking
// @Description Marks the booking cancelled and removes its calendar event
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	booking, err := h.service.Cancel(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromBooking(booking))
}

// DeleteBooking godoc
// @Summary Delete a booking
// @Tags bookings
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetAvailability godoc
// @Summary Busy intervals
// @Description Lists non-cancelled bookings overlapping the range. Overlaps are reported, not prevented
// @Tags bookings
// @Produce json
// @Param start query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.AvailabilityResponse
// @Failure 400 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/bookings/availability [get]
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return
	}

	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "start and end are required"})
		return
	}

	availability, err := h.service.Availability(h.RequestCtx(c), tenantID, start, end)
	if err != nil {
		c.JSON(bookingErrorStatus(err), dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, availability)
}
