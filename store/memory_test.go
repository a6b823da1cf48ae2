package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opslab/lbaas-control-plane/models"
)

// fakeHash makes seed output deterministic without paying bcrypt cost
func fakeHash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func TestSeedCredentials(t *testing.T) {
	credentials, err := SeedCredentials(fakeHash)
	require.NoError(t, err)
	require.Len(t, credentials, 3)

	byName := make(map[string]models.Credential)
	for _, c := range credentials {
		byName[c.Username] = c
	}

	user1 := byName["user1"]
	assert.Equal(t, models.RoleUser, user1.Role)
	assert.Equal(t, []string{"APP001", "SHARED01"}, user1.AppIDs)
	assert.Equal(t, "hashed:user1", user1.HashedPassword)
	assert.False(t, user1.Disabled)

	user2 := byName["user2"]
	assert.Equal(t, models.RoleUser, user2.Role)
	assert.Equal(t, []string{"APP002"}, user2.AppIDs)

	admin := byName["admin"]
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, []string{"APP001", "APP002", "APP003", "SHARED01"}, admin.AppIDs)
	assert.Equal(t, "admin@example.com", admin.Email)
}

func TestSeedCredentialsHashFailure(t *testing.T) {
	failing := func(string) (string, error) {
		return "", fmt.Errorf("hasher broken")
	}

	_, err := SeedCredentials(failing)
	assert.Error(t, err)
}

func TestMemoryStoreLookup(t *testing.T) {
	credentials, err := SeedCredentials(fakeHash)
	require.NoError(t, err)

	s := NewMemoryStore(credentials)
	ctx := context.Background()

	t.Run("known principal", func(t *testing.T) {
		cred, err := s.Lookup(ctx, "admin")
		require.NoError(t, err)
		assert.Equal(t, "admin", cred.Username)
		assert.Equal(t, models.RoleAdmin, cred.Role)
	})

	t.Run("unknown principal", func(t *testing.T) {
		cred, err := s.Lookup(ctx, "nosuchuser")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, cred)
	})

	t.Run("empty username", func(t *testing.T) {
		cred, err := s.Lookup(ctx, "")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, cred)
	})

	t.Run("count", func(t *testing.T) {
		assert.Equal(t, 3, s.Count())
	})
}

func TestMemoryStoreLookupReturnsCopy(t *testing.T) {
	credentials, err := SeedCredentials(fakeHash)
	require.NoError(t, err)

	s := NewMemoryStore(credentials)
	ctx := context.Background()

	first, err := s.Lookup(ctx, "user1")
	require.NoError(t, err)
	first.Disabled = true

	second, err := s.Lookup(ctx, "user1")
	require.NoError(t, err)
	assert.False(t, second.Disabled)
}
