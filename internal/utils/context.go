package utils

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

type ContextKey string

const (
	ClaimsKey    ContextKey = "claims"
	TenantIDKey  ContextKey = "tenant_id"
	UserIDKey    ContextKey = "user_id"
	SessionIDKey ContextKey = "session_id"
	RolesKey     ContextKey = "roles"
)

var (
	ErrNoClaimsInContext   = errors.New("no claims found in context")
	ErrInvalidClaimsType   = errors.New("invalid claims type")
	ErrNoTenantIDInClaims  = errors.New("no tenant_id found in claims")
	ErrInvalidTenantIDType = errors.New("tenant_id must be a string")
	ErrNoUserIDInClaims    = errors.New("no user_id found in claims")
)

func claimsFromContext(c context.Context) (jwt.MapClaims, error) {
	claims, exists := c.Value(ClaimsKey).(jwt.MapClaims)
	if !exists {
		return nil, ErrNoClaimsInContext
	}
	return claims, nil
}

func GetTenantIDFromContext(c context.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}

	tenantID, exists := claims[string(TenantIDKey)]
	if !exists {
		return "", ErrNoTenantIDInClaims
	}

	tenantIDStr, ok := tenantID.(string)
	if !ok {
		return "", ErrInvalidTenantIDType
	}

	return tenantIDStr, nil
}

func GetUserIDFromContext(c context.Context) (string, error) {
	claims, err := claimsFromContext(c)
	if err != nil {
		return "", err
	}

	userID, ok := claims[string(UserIDKey)].(string)
	if !ok || userID == "" {
		return "", ErrNoUserIDInClaims
	}
	return userID, nil
}

// GetSessionIDFromContext returns the session id, or "" for tokens not tied to a session.
func GetSessionIDFromContext(c context.Context) string {
	claims, err := claimsFromContext(c)
	if err != nil {
		return ""
	}
	sessionID, _ := claims[string(SessionIDKey)].(string)
	return sessionID
}

// GetRolesFromContext accepts both []string and the []interface{} produced by JWT parsing.
func GetRolesFromContext(c context.Context) []string {
	claims, err := claimsFromContext(c)
	if err != nil {
		return nil
	}

	switch roles := claims[string(RolesKey)].(type) {
	case []string:
		return roles
	case []interface{}:
		result := make([]string, 0, len(roles))
		for _, r := range roles {
			if s, ok := r.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}

// WithTenantClaims returns a context carrying minimal claims for background
// work (workers) that calls tenant-scoped repositories.
func WithTenantClaims(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ClaimsKey, jwt.MapClaims{string(TenantIDKey): tenantID})
}
