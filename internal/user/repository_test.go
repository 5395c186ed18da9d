package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxide/internal/storage"
)

func TestRepositoryCreateAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	exists, err := repo.ExistsByID(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	created, err := repo.Create(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.True(t, created)

	exists, err = repo.ExistsByID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepositoryAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	_, err := repo.Create(ctx, "alice", "pw1")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		ok, err := repo.Authenticate(ctx, "alice", "pw1")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := repo.Authenticate(ctx, "alice", "pw2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown user", func(t *testing.T) {
		ok, err := repo.Authenticate(ctx, "bob", "pw1")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepositoryAll(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := repo.Create(ctx, name, "pw")
		require.NoError(t, err)
	}

	users, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
		assert.Equal(t, u.ID, u.Name)
	}
	assert.ElementsMatch(t, []string{"alice", "bob", "carol"}, ids)
}
