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
	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) HandleCallback(ctx context.Context, code, userAgent, ipAddress string) (*domain.Session, error) {
	args := m.Called(ctx, code, userAgent, ipAddress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) IssueToken(userID, tenantID, sessionID string, roles []string) (dto.TokenResponse, error) {
	args := m.Called(userID, tenantID, sessionID, roles)
	return args.Get(0).(dto.TokenResponse), args.Error(1)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	mockService *MockAuthService
	handler     *AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.mockService = new(MockAuthService)
	s.handler = NewAuthHandler(s.mockService, &config.Config{
		AppBaseURL:        "https://app.example.com",
		DashboardPath:     "/dashboard",
		SignInPath:        "/sign-in",
		SessionTTLHours:   24,
		SessionCookieName: "session_token",
	}, logger.NewNopLogger())
}

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestClerkCallback_MissingCode() {
	c, w := newTestContext(http.MethodGet, "/api/auth/clerk-callback", nil)

	s.handler.ClerkCallback(c)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://app.example.com/sign-in?error=missing_code", w.Header().Get("Location"))
	s.mockService.AssertNotCalled(s.T(), "HandleCallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *AuthHandlerTestSuite) TestClerkCallback_ExchangeFails() {
	s.mockService.On("HandleCallback", mock.Anything, "bad", mock.Anything, mock.Anything).
		Return(nil, errors.New("invalid_grant"))

	c, w := newTestContext(http.MethodGet, "/api/auth/clerk-callback?code=bad", nil)
	s.handler.ClerkCallback(c)

	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://app.example.com/sign-in?error=auth_failed", w.Header().Get("Location"))
	s.Empty(w.Header().Get("Set-Cookie"))
}

func (s *AuthHandlerTestSuite) TestClerkCallback_SetsCookieAndRedirects() {
	// Arrange
	s.mockService.On("HandleCallback", mock.Anything, "good", mock.Anything, mock.Anything).
		Return(&domain.Session{ID: "s1", Token: "opaque-token"}, nil)

	c, w := newTestContext(http.MethodGet, "/api/auth/clerk-callback?code=good", nil)

	// Act
	s.handler.ClerkCallback(c)

	// Assert
	s.Equal(http.StatusFound, w.Code)
	s.Equal("https://app.example.com/dashboard", w.Header().Get("Location"))
	cookie := w.Header().Get("Set-Cookie")
	s.Contains(cookie, "session_token=opaque-token")
	s.Contains(cookie, "HttpOnly")
	s.Contains(cookie, "Max-Age=86400")
}

func (s *AuthHandlerTestSuite) TestLogout_UnknownTokenSucceeds() {
	// Arrange
	s.mockService.On("Logout", mock.Anything, "never-issued").Return(nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/logout", dto.LogoutRequest{Token: "never-issued"})

	// Act
	s.handler.Logout(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.SuccessResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.Success)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestLogout_PrefersCookie() {
	s.mockService.On("Logout", mock.Anything, "from-cookie").Return(nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/logout", nil)
	c.Request.AddCookie(&http.Cookie{Name: "session_token", Value: "from-cookie"})
	s.handler.Logout(c)

	s.Equal(http.StatusOK, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *AuthHandlerTestSuite) TestMe_UserNotFound() {
	s.mockService.On("CurrentUser", mock.Anything, "user1").Return(nil, service.ErrUserNotFound)

	c, w := newTestContext(http.MethodGet, "/api/v1/auth/me", nil)
	authenticate(c, "tenant1", "user1")
	s.handler.Me(c)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AuthHandlerTestSuite) TestIssueToken_UsesSessionClaims() {
	// Arrange
	expected := dto.TokenResponse{Token: "jwt", ExpiresAt: 1752787248000}
	s.mockService.On("IssueToken", "user1", "tenant1", "session-1", []string{"admin"}).Return(expected, nil)

	c, w := newTestContext(http.MethodPost, "/api/v1/auth/token", nil)
	authenticate(c, "tenant1", "user1", "admin")

	// Act
	s.handler.IssueToken(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.TokenResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal(expected, response)
}
