package store

import (
	"context"
	"fmt"

	"github.com/opslab/lbaas-control-plane/models"
)

// MemoryStore is an in-memory CredentialStore. The table is built once at
// construction and never mutated, so concurrent lookups need no locking.
type MemoryStore struct {
	credentials map[string]models.Credential
}

// NewMemoryStore creates a MemoryStore from the given credential records.
func NewMemoryStore(credentials []models.Credential) *MemoryStore {
	table := make(map[string]models.Credential, len(credentials))
	for _, c := range credentials {
		table[c.Username] = c
	}
	return &MemoryStore{credentials: table}
}

// Lookup returns the credential record for a username, or ErrNotFound.
func (s *MemoryStore) Lookup(ctx context.Context, username string) (*models.Credential, error) {
	cred, ok := s.credentials[username]
	if !ok {
		return nil, ErrNotFound
	}
	return &cred, nil
}

// Count returns the number of seeded principals.
func (s *MemoryStore) Count() int {
	return len(s.credentials)
}

// HashFunc hashes a plaintext password for seeding.
type HashFunc func(plaintext string) (string, error)

// SeedCredentials builds the static principal table. Seeding is kept separate
// from lookup so a persistent store can satisfy CredentialStore with the same
// records.
func SeedCredentials(hash HashFunc) ([]models.Credential, error) {
	seed := []struct {
		principal models.Principal
		password  string
	}{
		{
			principal: models.Principal{
				Username: "user1",
				Email:    "user1@example.com",
				FullName: "User One",
				Role:     models.RoleUser,
				AppIDs:   []string{"APP001", "SHARED01"},
			},
			password: "user1",
		},
		{
			principal: models.Principal{
				Username: "user2",
				Email:    "user2@example.com",
				FullName: "User Two",
				Role:     models.RoleUser,
				AppIDs:   []string{"APP002"},
			},
			password: "user2",
		},
		{
			principal: models.Principal{
				Username: "admin",
				Email:    "admin@example.com",
				FullName: "Admin User",
				Role:     models.RoleAdmin,
				AppIDs:   []string{"APP001", "APP002", "APP003", "SHARED01"},
			},
			password: "admin",
		},
	}

	credentials := make([]models.Credential, 0, len(seed))
	for _, s := range seed {
		hashed, err := hash(s.password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password for %s: %w", s.principal.Username, err)
		}
		credentials = append(credentials, models.Credential{
			Principal:      s.principal,
			HashedPassword: hashed,
		})
	}
	return credentials, nil
}
