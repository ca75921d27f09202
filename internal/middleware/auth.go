package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/kingrain94/vehicle-assess-api/internal/config"
	"github.com/kingrain94/vehicle-assess-api/internal/service"
	"github.com/kingrain94/vehicle-assess-api/internal/utils"
)

// SessionValidator resolves a session cookie, or the session a bearer token
// was issued for, to the user behind it
type SessionValidator interface {
	ValidateSession(ctx context.Context, token string) (*service.SessionIdentity, error)
	ValidateSessionID(ctx context.Context, sessionID string) (*service.SessionIdentity, error)
}

type AuthMiddleware struct {
	config   *config.Config
	sessions SessionValidator
}

func NewAuthMiddleware(config *config.Config, sessions SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{
		config:   config,
		sessions: sessions,
	}
}

// Authenticate accepts a bearer JWT or, when no Authorization header is
// sent, the session cookie set by the sign-in callback.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		var claims jwt.MapClaims

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			bearerToken := strings.Split(authHeader, " ")
			if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
				return
			}

			parsed, err := m.parseToken(bearerToken[1])
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
				return
			}

			// Tokens minted for a session die with it
			if sessionID, _ := parsed[string(utils.SessionIDKey)].(string); sessionID != "" {
				if _, err := m.sessions.ValidateSessionID(c.Request.Context(), sessionID); err != nil {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthenticated.Error()})
					return
				}
			}
			claims = parsed
		} else {
			token, err := c.Cookie(m.config.SessionCookieName)
			if err != nil || token == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
				return
			}

			sessionIdentity, err := m.sessions.ValidateSession(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": service.ErrUnauthenticated.Error()})
				return
			}
			claims = jwt.MapClaims{
				string(utils.UserIDKey):    sessionIdentity.Session.UserID,
				string(utils.TenantIDKey):  sessionIdentity.Session.TenantID,
				string(utils.SessionIDKey): sessionIdentity.Session.ID,
				string(utils.RolesKey):     sessionIdentity.Roles,
			}
		}

		c.Set(string(utils.TenantIDKey), claims[string(utils.TenantIDKey)])
		c.Set(string(utils.ClaimsKey), claims)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), utils.ClaimsKey, claims))
		c.Next()
	}
}

func (m *AuthMiddleware) parseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.config.JWTSecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequireRole middleware checks if the user has the required role
func (m *AuthMiddleware) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, exists := c.Get(string(utils.ClaimsKey))
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "No authentication found"})
			return
		}

		claimsMap, ok := claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Invalid claims type"})
			return
		}

		if !hasRole(claimsMap, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

// hasRole handles roles set from a session ([]string) and from a parsed JWT ([]any)
func hasRole(claims jwt.MapClaims, requiredRole string) bool {
	switch roles := claims[string(utils.RolesKey)].(type) {
	case []string:
		for _, role := range roles {
			if role == requiredRole {
				return true
			}
		}
	case []any:
		for _, role := range roles {
			if roleStr, ok := role.(string); ok && roleStr == requiredRole {
				return true
			}
		}
	}
	return false
}
