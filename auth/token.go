package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/opslab/lbaas-control-plane/config"
	"github.com/opslab/lbaas-control-plane/models"
)

// Claims represents the assertion encoded inside an access token.
// Role is an issuance-time snapshot; the session resolver re-fetches the
// live role from the store and never authorizes off this claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer produces signed, time-bounded access tokens. It is stateless: no
// record of issued tokens is kept, and validity is purely a function of
// signature and expiry.
type Issuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewIssuer creates an Issuer from the signing configuration. An empty
// secret or unknown algorithm is a fatal configuration error.
func NewIssuer(cfg config.AuthConfig) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	method := jwt.GetSigningMethod(cfg.Algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.Algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", cfg.Algorithm)
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("access token lifetime must be positive")
	}
	return &Issuer{
		secret: []byte(cfg.Secret),
		method: method,
		ttl:    cfg.AccessTokenTTL,
	}, nil
}

// Issue creates a signed access token for the principal, expiring at
// now+ttl. A non-positive ttl falls back to the configured default.
func (i *Issuer) Issue(p *models.Principal, now time.Time, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = i.ttl
	}

	claims := &Claims{
		Role: string(p.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(i.method, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
