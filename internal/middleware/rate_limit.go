package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	rateLimitWindow        = time.Minute
	defaultTenantRateLimit = 1000
)

// ThrottleRecorder stores a record of every rejected request
type ThrottleRecorder interface {
	Record(ctx context.Context, event *domain.RateLimitEvent)
}

type RateLimitMiddleware struct {
	redis    *redis.Client
	config   *config.Config
	recorder ThrottleRecorder
	logger   *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, recorder ThrottleRecorder, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:    redis,
		config:   config,
		recorder: recorder,
		logger:   logger,
	}
}

// TenantRateLimit implements per-tenant rate limiting
func (m *RateLimitMiddleware) TenantRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := utils.GetTenantIDFromContext(c.Request.Context())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Tenant ID required for rate limiting"})
			return
		}

		key := fmt.Sprintf("rate_limit:tenant:%s", tenantID)
		m.limit(c, key, m.tenantRateLimit(), domain.RateLimitScopeTenant, tenantID, "Rate limit exceeded")
	}
}

// GlobalRateLimit implements global rate limiting based on IP
func (m *RateLimitMiddleware) GlobalRateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:global:%s", c.ClientIP())
		m.limit(c, key, limit, domain.RateLimitScopeGlobal, "", "Global rate limit exceeded")
	}
}

// limit runs a fixed one-minute window counter. Redis errors let the
// request through.
func (m *RateLimitMiddleware) limit(c *gin.Context, key string, limit int, scope domain.RateLimitScope, tenantID, message string) {
	ctx := c.Request.Context()
	reset := strconv.FormatInt(time.Now().Add(rateLimitWindow).Unix(), 10)

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)

		m.recorder.Record(ctx, &domain.RateLimitEvent{
			TenantID: tenantID,
			Key:      key,
			Scope:    string(scope),
			Limit:    limit,
			Path:     c.FullPath(),
		})

		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error": message,
			"limit": limit,
			"reset": time.Now().Add(rateLimitWindow).Unix(),
		})
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}

// tenantRateLimit is the configured per-tenant limit. Per-tenant overrides
// stored on the tenant record are informational only.
func (m *RateLimitMiddleware) tenantRateLimit() int {
	if m.config.DefaultRateLimit > 0 {
		return m.config.DefaultRateLimit
	}
	return defaultTenantRateLimit
}
