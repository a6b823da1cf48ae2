package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/opslab/lbaas-control-plane/models"
	"github.com/opslab/lbaas-control-plane/store"
)

// Service composes the credential store, password verifier, token issuer and
// token validator into the login and session-resolution flows.
type Service struct {
	store     store.CredentialStore
	issuer    *Issuer
	validator *Validator
	logger    *zap.Logger
	now       func() time.Time
}

// NewService creates a new auth Service.
func NewService(st store.CredentialStore, issuer *Issuer, validator *Validator, logger *zap.Logger) *Service {
	return &Service{
		store:     st,
		issuer:    issuer,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// Login verifies a username/password pair and issues an access token.
// An unknown username and a wrong password both return
// ErrInvalidCredentials so the caller cannot tell which check failed.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	cred, err := s.store.Lookup(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !VerifyPassword(password, cred.HashedPassword) {
		return "", ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(&cred.Principal, s.now().UTC(), 0)
	if err != nil {
		return "", err
	}

	s.logger.Info("access token issued",
		zap.String("username", cred.Username),
		zap.String("role", string(cred.Role)))

	return token, nil
}

// Resolve validates a bearer token and returns the live principal it
// identifies. The principal is re-fetched from the store so role and
// entitlement changes take effect immediately; the token's embedded role is
// not trusted. A principal removed since issuance yields
// ErrInvalidCredentials; a disabled principal yields ErrInactiveAccount.
func (s *Service) Resolve(ctx context.Context, tokenString string) (*models.Principal, error) {
	claims, err := s.validator.Validate(tokenString)
	if err != nil {
		s.logger.Debug("token validation failed", zap.Error(err))
		return nil, ErrInvalidCredentials
	}

	cred, err := s.store.Lookup(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.Warn("token subject no longer registered",
				zap.String("username", claims.Subject))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if cred.Disabled {
		return nil, ErrInactiveAccount
	}

	principal := cred.Principal
	return &principal, nil
}
