package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/opslab/lbaas-control-plane/config"
)

// Validator verifies access tokens against the configured secret and
// algorithm. Validation is a pure function of the token and the current
// time; no per-token state exists.
type Validator struct {
	secret []byte
	algs   []string
	now    func() time.Time
}

// NewValidator creates a Validator from the signing configuration.
func NewValidator(cfg config.AuthConfig) (*Validator, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if method := jwt.GetSigningMethod(cfg.Algorithm); method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}
	return &Validator{
		secret: []byte(cfg.Secret),
		algs:   []string{cfg.Algorithm},
		now:    time.Now,
	}, nil
}

// Validate decodes and verifies a token string, returning its claims.
// Signature mismatch, malformed structure, unsupported algorithm, expiry and
// a missing subject all collapse to ErrInvalidCredentials; the underlying
// cause is wrapped for logging but must never reach a client.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return v.secret, nil
		},
		jwt.WithValidMethods(v.algs),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return nil, ErrInvalidCredentials
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing sub claim", ErrInvalidCredentials)
	}
	return claims, nil
}
