// Package store provides credential lookup for registered principals.
//
// The only implementation in this scaffold is an immutable in-memory table
// seeded at startup; the CredentialStore interface exists so a persistent
// backend can replace it without touching the auth core.
package store

import (
	"context"
	"errors"

	"github.com/opslab/lbaas-control-plane/models"
)

// ErrNotFound is returned when no principal exists for a username.
var ErrNotFound = errors.New("principal not found")

// CredentialStore provides read access to credential records.
type CredentialStore interface {
	// Lookup returns the credential record for a username, or ErrNotFound.
	// Any unknown username, including the empty string, is ErrNotFound.
	Lookup(ctx context.Context, username string) (*models.Credential, error)
}
