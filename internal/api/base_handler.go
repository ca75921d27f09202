package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
)

const msgNoTenant = "No tenant ID found"

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// tenantID writes a 401 and returns false when the request carries no tenant
func (h *BaseHandler) tenantID(c *gin.Context) (string, bool) {
	tenantID := c.GetString(string(utils.TenantIDKey))
	if tenantID == "" {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: msgNoTenant})
		return "", false
	}
	return tenantID, true
}

// identity returns the tenant and user of an authenticated request
func (h *BaseHandler) identity(c *gin.Context) (string, string, bool) {
	tenantID, ok := h.tenantID(c)
	if !ok {
		return "", "", false
	}
	userID, err := utils.GetUserIDFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return "", "", false
	}
	return tenantID, userID, true
}

// queryInt reads an integer query parameter, falling back on absent or bad input
func queryInt(c *gin.Context, key string, fallback int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}
