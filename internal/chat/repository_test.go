package chat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oxide/internal/storage"
)

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	id, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	id2, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)
}

func TestRepositoryForUser(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	ab, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	bc, err := repo.Create(ctx, "bob", "carol")
	require.NoError(t, err)

	t.Run("participant order is preserved", func(t *testing.T) {
		chats, err := repo.ForUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, chats, 1)
		assert.Equal(t, ab, chats[0].ID)
		assert.Equal(t, []string{"alice", "bob"}, chats[0].ParticipantIDs)
	})

	t.Run("membership matches either position", func(t *testing.T) {
		chats, err := repo.ForUser(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, chats, 2)
		assert.Equal(t, ab, chats[0].ID)
		assert.Equal(t, bc, chats[1].ID)
	})

	t.Run("non-participant sees nothing", func(t *testing.T) {
		chats, err := repo.ForUser(ctx, "dave")
		require.NoError(t, err)
		assert.Empty(t, chats)
	})
}

func TestRepositoryTexts(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(storage.NewMemoryStore())

	chatID, err := repo.Create(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, repo.CreateText(ctx, chatID, "hi", "alice"))
	require.NoError(t, repo.CreateText(ctx, chatID, "hello", "bob"))
	// Neither the chat nor the sender is validated.
	require.NoError(t, repo.CreateText(ctx, "no-such-chat", "void", "nobody"))

	texts, err := repo.TextsForChat(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, texts, 2)

	assert.Equal(t, "hi", texts[0].Content)
	assert.Equal(t, "alice", texts[0].From)
	assert.Equal(t, chatID, texts[0].ChatID)
	assert.NotEmpty(t, texts[0].ID)
	assert.Equal(t, "hello", texts[1].Content)

	orphans, err := repo.TextsForChat(ctx, "no-such-chat")
	require.NoError(t, err)
	assert.Len(t, orphans, 1)
}
