package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/opslab/lbaas-control-plane/auth"
	"github.com/opslab/lbaas-control-plane/middleware"
	"github.com/opslab/lbaas-control-plane/utils"
)

// loginRequest is the form-encoded body of POST /api/v1/auth/token
type loginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// tokenResponse is the success body of POST /api/v1/auth/token
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	auth   *auth.Service
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(svc *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   svc,
		logger: logger,
	}
}

// HandleToken handles POST /api/v1/auth/token.
// Accepts form-encoded username/password and returns a bearer access token.
// All authentication failures share one generic message.
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		_ = utils.WriteBadRequest(w, "Invalid form data", nil)
		return
	}

	req := loginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := utils.ValidateStruct(req); err != nil {
		var validationErr *utils.ValidationError
		if errors.As(err, &validationErr) {
			_ = utils.WriteBadRequest(w, validationErr.Message, validationErr.Details())
			return
		}
		_ = utils.WriteBadRequest(w, "Invalid request", nil)
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			_ = utils.WriteUnauthorized(w, "Incorrect username or password")
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		_ = utils.WriteInternalServerError(w, "")
		return
	}

	_ = utils.WriteOK(w, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// HandleMe handles GET /api/v1/auth/users/me.
// Returns the authenticated principal's public fields; the password hash is
// never part of the principal model reachable here.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		_ = utils.WriteUnauthorized(w, "Authentication required")
		return
	}

	_ = utils.WriteOK(w, principal)
}
