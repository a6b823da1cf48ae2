package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/opslab/lbaas-control-plane/auth"
	"github.com/opslab/lbaas-control-plane/models"
)

// MockSessionResolver is a mock implementation of SessionResolver
type MockSessionResolver struct {
	mock.Mock
}

func (m *MockSessionResolver) Resolve(ctx context.Context, tokenString string) (*models.Principal, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Principal), args.Error(1)
}

func TestRequireAuth(t *testing.T) {
	logger := zap.NewNop()

	t.Run("valid bearer token allows request", func(t *testing.T) {
		mockResolver := new(MockSessionResolver)
		m := NewAuthMiddleware(mockResolver, logger)

		principal := &models.Principal{
			Username: "user1",
			Role:     models.RoleUser,
			AppIDs:   []string{"APP001", "SHARED01"},
		}
		mockResolver.On("Resolve", mock.Anything, "valid-token").Return(principal, nil)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := GetPrincipalFromContext(r.Context())
			assert.NotNil(t, got)
			assert.Equal(t, "user1", got.Username)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockResolver.AssertExpectations(t)
	})

	t.Run("missing token returns 401 with bearer challenge", func(t *testing.T) {
		mockResolver := new(MockSessionResolver)
		m := NewAuthMiddleware(mockResolver, logger)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
		mockResolver.AssertNotCalled(t, "Resolve")
	})

	t.Run("malformed authorization header returns 401", func(t *testing.T) {
		mockResolver := new(MockSessionResolver)
		m := NewAuthMiddleware(mockResolver, logger)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockResolver.AssertNotCalled(t, "Resolve")
	})

	t.Run("invalid token returns generic 401", func(t *testing.T) {
		mockResolver := new(MockSessionResolver)
		m := NewAuthMiddleware(mockResolver, logger)

		mockResolver.On("Resolve", mock.Anything, "bad-token").Return(nil, auth.ErrInvalidCredentials)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Could not validate credentials")
		mockResolver.AssertExpectations(t)
	})

	t.Run("disabled principal returns 400", func(t *testing.T) {
		mockResolver := new(MockSessionResolver)
		m := NewAuthMiddleware(mockResolver, logger)

		mockResolver.On("Resolve", mock.Anything, "disabled-token").Return(nil, auth.ErrInactiveAccount)

		handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler should not be called")
		}))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("Authorization", "Bearer disabled-token")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Inactive user")
		mockResolver.AssertExpectations(t)
	})
}

func TestRequireRole(t *testing.T) {
	logger := zap.NewNop()
	m := NewAuthMiddleware(new(MockSessionResolver), logger)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		handler := m.RequireRole(models.RoleAdmin)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		ctx := WithPrincipal(req.Context(), &models.Principal{Username: "admin", Role: models.RoleAdmin})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong role returns 403", func(t *testing.T) {
		handler := m.RequireRole(models.RoleAdmin)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		ctx := WithPrincipal(req.Context(), &models.Principal{Username: "user1", Role: models.RoleUser})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing principal returns 401", func(t *testing.T) {
		handler := m.RequireRole(models.RoleAdmin)(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequireAppID(t *testing.T) {
	logger := zap.NewNop()
	m := NewAuthMiddleware(new(MockSessionResolver), logger)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("entitled principal passes", func(t *testing.T) {
		handler := m.RequireAppID("APP001")(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		ctx := WithPrincipal(req.Context(), &models.Principal{
			Username: "user1",
			Role:     models.RoleUser,
			AppIDs:   []string{"APP001", "SHARED01"},
		})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing entitlement returns 403", func(t *testing.T) {
		handler := m.RequireAppID("APP003")(okHandler)

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		ctx := WithPrincipal(req.Context(), &models.Principal{
			Username: "user2",
			Role:     models.RoleUser,
			AppIDs:   []string{"APP002"},
		})
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "well formed", header: "Bearer abc123", want: "abc123"},
		{name: "case insensitive scheme", header: "bearer abc123", want: "abc123"},
		{name: "missing header", header: "", want: ""},
		{name: "wrong scheme", header: "Basic abc123", want: ""},
		{name: "scheme only", header: "Bearer", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, extractBearerToken(req))
		})
	}
}
