package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrTenantExists   = errors.New("tenant already exists")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Auth errors
	ErrUnauthenticated = errors.New("unauthenticated")

	// File errors
	ErrFileNotFound      = errors.New("file not found")
	ErrCrossTenantAccess = errors.New("resource belongs to another tenant")

	// Booking errors
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidTimeRange     = errors.New("end time must be after start time")
	ErrInvalidBookingStatus = errors.New("invalid booking status")

	// Pricing errors
	ErrPricingRuleNotFound = errors.New("pricing rule not found")

	// Stream errors
	ErrStreamNotFound = errors.New("text stream not found")
	ErrStreamClosed   = errors.New("text stream is closed")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("vehicle analysis not found")

	// Webhook errors
	ErrInvalidPayload = errors.New("invalid webhook payload")
)
