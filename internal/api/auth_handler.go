package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

const (
	signInErrorMissingCode = "missing_code"
	signInErrorAuthFailed  = "auth_failed"
)

type AuthService interface {
	HandleCallback(ctx context.Context, code, userAgent, ipAddress string) (*domain.Session, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
	IssueToken(userID, tenantID, sessionID string, roles []string) (dto.TokenResponse, error)
}

type AuthHandler struct {
	*BaseHandler
	service AuthService
	config  *config.Config
	logger  *logger.Logger
}

func NewAuthHandler(service AuthService, config *config.Config, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, config: config, logger: logger}
}

// ClerkCallback godoc
// @Summary Identity provider sign-in callback
// @Description Exchanges the authorization code, opens a session, sets the session cookie and redirects to the dashboard. Failures redirect to the sign-in page with an error code
// @Tags auth
// @Param code query string true "Authorization code"
// @Success 302
// @Router /api/auth/clerk-callback [get]
func (h *AuthHandler) ClerkCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, h.config.SignInURL(signInErrorMissingCode))
		return
	}

	session, err := h.service.HandleCallback(h.RequestCtx(c), code, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		h.logger.Error("Sign-in callback failed", err, zap.String("ip", c.ClientIP()))
		c.Redirect(http.StatusFound, h.config.SignInURL(signInErrorAuthFailed))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.config.SessionCookieName, session.Token, int(h.config.SessionTTL().Seconds()), "/", "", h.config.CookieSecure, true)
	c.Redirect(http.StatusFound, h.config.DashboardURL())
}

// Logout godoc
// @Summary End the current session
// @Description Deletes the session named by the cookie or the body token. Unknown tokens still succeed
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LogoutRequest false "Token when no cookie is sent"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.Error
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.config.SessionCookieName)
	if token == "" && c.Request.ContentLength > 0 {
		var req dto.LogoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
			return
		}
		token = req.Token
	}

	if err := h.service.Logout(h.RequestCtx(c), token); err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.SetCookie(h.config.SessionCookieName, "", -1, "/", "", h.config.CookieSecure, true)
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	_, userID, ok := h.identity(c)
	if !ok {
		return
	}

	user, err := h.service.CurrentUser(h.RequestCtx(c), userID)
	if errors.Is(err, service.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

// IssueToken godoc
// @Summary Issue an API token
// @Description Signs a bearer JWT for the authenticated session
// @Tags auth
// @Produce json
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Security ApiKeyAuth
// @Router /api/v1/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	tenantID, userID, ok := h.identity(c)
	if !ok {
		return
	}
	ctx := h.RequestCtx(c)

	token, err := h.service.IssueToken(userID, tenantID, utils.GetSessionIDFromContext(ctx), utils.GetRolesFromContext(ctx))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}
