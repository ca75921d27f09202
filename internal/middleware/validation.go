package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type ValidationMiddleware struct {
	logger *logger.Logger
}

func NewValidationMiddleware(logger *logger.Logger) *ValidationMiddleware {
	return &ValidationMiddleware{
		logger: logger,
	}
}

// RegisterValidators adds the custom binding tags used by request DTOs to
// gin's validator engine. It must run before routes serve traffic.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin validator engine is not go-playground/validator")
	}
	if err := v.RegisterValidation("booking_status", validateBookingStatus); err != nil {
		return fmt.Errorf("failed to register booking_status: %w", err)
	}
	if err := v.RegisterValidation("chat_role", validateChatRole); err != nil {
		return fmt.Errorf("failed to register chat_role: %w", err)
	}
	return nil
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	return domain.IsValidBookingStatus(fl.Field().String())
}

func validateChatRole(fl validator.FieldLevel) bool {
	switch domain.ChatRole(fl.Field().String()) {
	case domain.ChatRoleSystem, domain.ChatRoleUser, domain.ChatRoleAssistant:
		return true
	}
	return false
}

// FormatValidationError turns binding errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "email":
			errs[field] = "Invalid email format"
		case "uuid":
			errs[field] = "Must be a UUID"
		case "booking_status":
			errs[field] = "Must be one of pending, confirmed, cancelled, completed"
		case "chat_role":
			errs[field] = "Must be one of system, user, assistant"
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}
	return errs
}

// SanitizeInput strips control characters from query parameters and headers
func (m *ValidationMiddleware) SanitizeInput() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Request.URL.Query()
		changed := false
		for key, values := range query {
			for i, value := range values {
				sanitized := sanitizeString(value)
				if sanitized != value {
					m.logger.Info("Sanitized query parameter",
						zap.String("key", key),
						zap.String("original", value),
						zap.String("sanitized", sanitized))
					query[key][i] = sanitized
					changed = true
				}
			}
		}
		if changed {
			c.Request.URL.RawQuery = query.Encode()
		}

		for key, values := range c.Request.Header {
			if strings.EqualFold(key, "authorization") {
				continue
			}
			for i, value := range values {
				sanitized := sanitizeString(value)
				if sanitized != value {
					m.logger.Info("Sanitized header",
						zap.String("key", key),
						zap.String("sanitized", sanitized))
					c.Request.Header[key][i] = sanitized
				}
			}
		}

		c.Next()
	}
}

// ValidateContentType ensures only allowed content types
func (m *ValidationMiddleware) ValidateContentType(allowedTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodDelete {
			c.Next()
			return
		}

		// Bodyless POSTs such as logout carry no content type
		if c.Request.ContentLength == 0 {
			c.Next()
			return
		}

		contentType := c.GetHeader("Content-Type")
		if contentType == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Content-Type header is required"})
			return
		}

		contentType = strings.TrimSpace(strings.Split(contentType, ";")[0])

		allowed := false
		for _, allowedType := range allowedTypes {
			if contentType == allowedType {
				allowed = true
				break
			}
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{
				"error":         "Unsupported Content-Type",
				"allowed_types": allowedTypes,
			})
			return
		}

		c.Next()
	}
}

// ValidateRequestSize limits request body size
func (m *ValidationMiddleware) ValidateRequestSize(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"error":         "Request body too large",
				"max_size":      maxSize,
				"received_size": c.Request.ContentLength,
			})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}

var suspiciousPatterns = compilePatterns(
	// SQL injection
	`(?i)(\bUNION\b.*\bSELECT\b)`,
	`(?i)(\bINSERT\b.*\bINTO\b)`,
	`(?i)(\bDELETE\b.*\bFROM\b)`,
	`(?i)(\bDROP\b.*\bTABLE\b)`,
	`(?i)(\bALTER\b.*\bTABLE\b)`,
	`/\*.*\*/`,
	// XSS
	`(?i)<script.*?>`,
	`(?i)javascript:`,
	`(?i)onerror=`,
	`(?i)<iframe.*?>`,
	// Path traversal
	`\.\./`,
	`\.\.\\`,
	`(?i)%2e%2e%2f`,
	`(?i)%2e%2e%5c`,
)

func compilePatterns(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		compiled[i] = regexp.MustCompile(pattern)
	}
	return compiled
}

// BlockSuspiciousPatterns rejects requests whose path or query look like an
// injection attempt. Bodies are not inspected: booking notes and chat
// messages legitimately contain arbitrary text.
func (m *ValidationMiddleware) BlockSuspiciousPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		if containsSuspiciousPattern(c.Request.URL.Path) {
			m.logger.Warn("Blocked suspicious request",
				zap.String("path", c.Request.URL.Path),
				zap.String("ip", c.ClientIP()))
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		for key, values := range c.Request.URL.Query() {
			for _, value := range values {
				if containsSuspiciousPattern(value) {
					m.logger.Warn("Blocked suspicious query parameter",
						zap.String("key", key),
						zap.String("ip", c.ClientIP()))
					c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
					return
				}
			}
		}

		c.Next()
	}
}

func sanitizeString(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if r >= 32 || r == '\n' || r == '\r' || r == '\t' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsSuspiciousPattern(input string) bool {
	for _, pattern := range suspiciousPatterns {
		if pattern.MatchString(input) {
			return true
		}
	}
	return false
}
