package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/opslab/lbaas-control-plane/auth"
	"github.com/opslab/lbaas-control-plane/models"
	"github.com/opslab/lbaas-control-plane/utils"
)

// SessionResolver resolves a bearer token into an active principal.
type SessionResolver interface {
	Resolve(ctx context.Context, tokenString string) (*models.Principal, error)
}

// AuthMiddleware provides authentication middleware functionality
type AuthMiddleware struct {
	resolver SessionResolver
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver SessionResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth requires a valid bearer token identifying an active principal.
// The resolved principal is stored in the request context. Invalid, expired
// or forged tokens get a generic 401; a disabled principal gets 400, matching
// the distinction the auth core draws between the two failure classes.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := chimiddleware.GetReqID(ctx)

		token := extractBearerToken(r)
		if token == "" {
			m.logger.Warn("missing bearer token",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w, "Not authenticated")
			return
		}

		principal, err := m.resolver.Resolve(ctx, token)
		if err != nil {
			if errors.Is(err, auth.ErrInactiveAccount) {
				m.logger.Warn("disabled principal rejected",
					zap.String("request_id", requestID))
				_ = utils.WriteBadRequest(w, "Inactive user", nil)
				return
			}
			m.logger.Warn("token resolution failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, "Could not validate credentials")
			return
		}

		ctx = WithPrincipal(ctx, principal)

		m.logger.Debug("authentication successful",
			zap.String("request_id", requestID),
			zap.String("username", principal.Username),
			zap.String("role", string(principal.Role)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole requires the authenticated principal to hold a specific role.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := chimiddleware.GetReqID(ctx)

			principal := GetPrincipalFromContext(ctx)
			if principal == nil {
				m.logger.Error("principal not found in context",
					zap.String("request_id", requestID))
				_ = utils.WriteUnauthorized(w, "Authentication required")
				return
			}

			if principal.Role != role {
				m.logger.Warn("insufficient permissions",
					zap.String("request_id", requestID),
					zap.String("username", principal.Username),
					zap.String("required_role", string(role)),
					zap.String("role", string(principal.Role)))
				_ = utils.WriteForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAppID requires the authenticated principal to be entitled to the
// given application. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAppID(appID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := chimiddleware.GetReqID(ctx)

			principal := GetPrincipalFromContext(ctx)
			if principal == nil {
				m.logger.Error("principal not found in context",
					zap.String("request_id", requestID))
				_ = utils.WriteUnauthorized(w, "Authentication required")
				return
			}

			if !principal.HasAppID(appID) {
				m.logger.Warn("missing application entitlement",
					zap.String("request_id", requestID),
					zap.String("username", principal.Username),
					zap.String("app_id", appID))
				_ = utils.WriteForbidden(w, "Not entitled to this application")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearerToken extracts the Bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
