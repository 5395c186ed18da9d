package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type userDoc struct {
	ID       string `bson:"id"`
	Name     string `bson:"name,omitempty"`
	Password string `bson:"password,omitempty"`
}

type chatDoc struct {
	ID             string   `bson:"id"`
	ParticipantIDs []string `bson:"participant_ids"`
}

func TestMemoryStoreFindOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.InsertOne(ctx, UsersCollection, userDoc{ID: "alice", Password: "pw1"})
	require.NoError(t, err)

	t.Run("match by field", func(t *testing.T) {
		var got userDoc
		err := store.FindOne(ctx, UsersCollection, bson.M{"id": "alice"}, &got)
		require.NoError(t, err)
		assert.Equal(t, "alice", got.ID)
		assert.Equal(t, "pw1", got.Password)
	})

	t.Run("no match", func(t *testing.T) {
		var got userDoc
		err := store.FindOne(ctx, UsersCollection, bson.M{"id": "bob"}, &got)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing collection", func(t *testing.T) {
		var got userDoc
		err := store.FindOne(ctx, "nope", bson.M{"id": "alice"}, &got)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestMemoryStoreFindAll(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	chats := []chatDoc{
		{ID: "c1", ParticipantIDs: []string{"alice", "bob"}},
		{ID: "c2", ParticipantIDs: []string{"bob", "carol"}},
		{ID: "c3", ParticipantIDs: []string{"alice", "carol"}},
	}
	for _, c := range chats {
		_, err := store.InsertOne(ctx, ChatsCollection, c)
		require.NoError(t, err)
	}

	t.Run("array field matches by membership", func(t *testing.T) {
		var got []chatDoc
		err := store.FindAll(ctx, ChatsCollection, bson.M{"participant_ids": "alice"}, &got)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].ID)
		assert.Equal(t, "c3", got[1].ID)
	})

	t.Run("nil filter matches everything", func(t *testing.T) {
		var got []chatDoc
		err := store.FindAll(ctx, ChatsCollection, nil, &got)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("no matches yields empty result", func(t *testing.T) {
		var got []chatDoc
		err := store.FindAll(ctx, ChatsCollection, bson.M{"participant_ids": "dave"}, &got)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("destination must be a slice pointer", func(t *testing.T) {
		var got chatDoc
		err := store.FindAll(ctx, ChatsCollection, nil, &got)
		assert.ErrorIs(t, err, ErrInvalidResult)
	})
}

func TestMemoryStoreInsertOne(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	id, err := store.InsertOne(ctx, TextsCollection, bson.M{"id": "t1", "content": "hi"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Duplicate inserts are not rejected; the store has no uniqueness checks.
	id2, err := store.InsertOne(ctx, TextsCollection, bson.M{"id": "t1", "content": "hi"})
	require.NoError(t, err)
	assert.NotEqual(t, id, id2)

	var got []bson.M
	require.NoError(t, store.FindAll(ctx, TextsCollection, bson.M{"id": "t1"}, &got))
	assert.Len(t, got, 2)
}
