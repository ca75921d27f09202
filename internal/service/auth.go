package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kingrain94/vehicle-assess-api/internal/api/dto"
	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/domain"
	"github.com/kingrain94/vehicle-assess-api/internal/repository"
	"github.com/kingrain94/vehicle-assess-api/internal/service/identity"
	"github.com/kingrain94/vehicle-assess-api/pkg/logger"
	"github.com/kingrain94/vehicle-assess-api/pkg/utils"
)

const (
	sessionCacheSize = 4096
	sessionCacheTTL  = 5 * time.Minute
)

// SessionIdentity is a validated session together with the roles of its user
type SessionIdentity struct {
	Session *domain.Session
	Roles   []string
}

type AuthService struct {
	repo     repository.Repository
	identity IdentityProvider
	config   *config.Config
	sessions *expirable.LRU[string, *SessionIdentity]
	logger   *logger.Logger
}

func NewAuthService(repo repository.Repository, identity IdentityProvider, cfg *config.Config, logger *logger.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		identity: identity,
		config:   cfg,
		sessions: expirable.NewLRU[string, *SessionIdentity](sessionCacheSize, nil, sessionCacheTTL),
		logger:   logger,
	}
}

// HandleCallback exchanges an authorization code and opens a session for the user
func (s *AuthService) HandleCallback(ctx context.Context, code, userAgent, ipAddress string) (*domain.Session, error) {
	profile, err := s.identity.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	user, err := s.findOrCreateUser(ctx, profile)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, ErrUnauthenticated
	}

	session := &domain.Session{
		TenantID:  user.TenantID,
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.config.SessionTTL()).UnixMilli(),
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}
	if err := s.repo.Session().Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Info("User signed in",
		zap.String("user_id", user.ID),
		zap.String("tenant_id", user.TenantID),
	)
	return session, nil
}

func (s *AuthService) findOrCreateUser(ctx context.Context, profile *identity.Profile) (*domain.User, error) {
	user, err := s.repo.User().GetByExternalID(ctx, profile.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	name := profile.Name
	if name == "" {
		name = profile.Email
	}

	// First login provisions a workspace owned by the user
	tenant, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		Name:               name,
		Slug:               Slugify(name) + "-" + uuid.NewString()[:8],
		Plan:               string(domain.PlanFree),
		SubscriptionStatus: string(domain.SubscriptionNone),
		RateLimit:          s.config.DefaultRateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to provision tenant: %w", err)
	}

	user = &domain.User{
		TenantID:   tenant.ID,
		ExternalID: profile.ExternalID,
		Email:      profile.Email,
		Name:       name,
		Roles:      domain.DefaultOwnerRoles,
		Active:     true,
	}
	if err := s.repo.User().Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Provisioned tenant for new user",
		zap.String("tenant_id", tenant.ID),
		zap.String("user_id", user.ID),
	)
	return user, nil
}

// ValidateSession resolves a session token. Missing, expired or inactive
// sessions all yield ErrUnauthenticated.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*SessionIdentity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	return s.resolve(ctx, token, func() (*domain.Session, error) {
		return s.repo.Session().GetByToken(ctx, token)
	})
}

// ValidateSessionID resolves the session a bearer token was issued for, so
// tokens stop working once their session is logged out or expires.
func (s *AuthService) ValidateSessionID(ctx context.Context, sessionID string) (*SessionIdentity, error) {
	if sessionID == "" {
		return nil, ErrUnauthenticated
	}
	return s.resolve(ctx, sessionIDCacheKey(sessionID), func() (*domain.Session, error) {
		return s.repo.Session().GetByID(ctx, sessionID)
	})
}

// Session tokens are UUIDs, so the prefix keeps id keys apart from token keys
func sessionIDCacheKey(sessionID string) string {
	return "id:" + sessionID
}

func (s *AuthService) resolve(ctx context.Context, cacheKey string, load func() (*domain.Session, error)) (*SessionIdentity, error) {
	now := utils.NowMillis()
	if cached, ok := s.sessions.Get(cacheKey); ok {
		if cached.Session.Expired(now) {
			s.sessions.Remove(cacheKey)
			return nil, ErrUnauthenticated
		}
		return cached, nil
	}

	session, err := load()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if session.Expired(now) {
		return nil, ErrUnauthenticated
	}

	user, err := s.repo.User().GetByID(ctx, session.UserID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, ErrUnauthenticated
	}

	sessionIdentity := &SessionIdentity{Session: session, Roles: user.Roles}
	s.sessions.Add(cacheKey, sessionIdentity)
	return sessionIdentity, nil
}

// Logout removes the session and evicts it under both cache keys. Unknown
// tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	s.sessions.Remove(token)

	session, err := s.repo.Session().GetByToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Info("Logout for unknown session token")
		return nil
	}
	if err != nil {
		return err
	}
	s.sessions.Remove(sessionIDCacheKey(session.ID))

	if _, err := s.repo.Session().DeleteByToken(ctx, token); err != nil {
		return err
	}
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.User().GetByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// IssueToken signs an API bearer token for an authenticated session
func (s *AuthService) IssueToken(userID, tenantID, sessionID string, roles []string) (dto.TokenResponse, error) {
	now := time.Now()
	expiresAt := now.Add(time.Duration(s.config.JWTExpirationHours) * time.Hour)

	claims := jwt.MapClaims{
		"user_id":    userID,
		"tenant_id":  tenantID,
		"roles":      roles,
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.JWTSecretKey))
	if err != nil {
		return dto.TokenResponse{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return dto.TokenResponse{Token: signed, ExpiresAt: expiresAt.UnixMilli()}, nil
}
