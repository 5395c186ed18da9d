package chat

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"oxide/internal/storage"
)

// Repository exposes the chat and text operations of the service, each a
// single round trip to the store.
type Repository interface {
	// Create stores a new empty chat between from and to and returns its
	// id. Neither participant is validated against registered users.
	Create(ctx context.Context, fromID, toID string) (string, error)

	// ForUser returns every chat whose participant list contains userID,
	// unordered.
	ForUser(ctx context.Context, userID string) ([]*Chat, error)

	// CreateText stores a new text. The chat id is not checked for
	// existence and fromID is not checked for membership.
	CreateText(ctx context.Context, chatID, content, fromID string) error

	// TextsForChat returns every text of the chat in store-native order,
	// which is not guaranteed chronological.
	TextsForChat(ctx context.Context, chatID string) ([]*Text, error)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Create(ctx context.Context, fromID, toID string) (string, error) {
	doc := chatDocument{
		ID:             uuid.NewString(),
		ParticipantIDs: []string{fromID, toID},
		TextIDs:        []string{},
	}
	if _, err := r.store.InsertOne(ctx, storage.ChatsCollection, doc); err != nil {
		return "", err
	}
	return doc.ID, nil
}

func (r *repository) ForUser(ctx context.Context, userID string) ([]*Chat, error) {
	var docs []chatDocument
	err := r.store.FindAll(ctx, storage.ChatsCollection, bson.M{"participant_ids": userID}, &docs)
	if err != nil {
		return nil, err
	}

	chats := make([]*Chat, len(docs))
	for i, doc := range docs {
		chats[i] = &Chat{ID: doc.ID, ParticipantIDs: doc.ParticipantIDs}
	}
	return chats, nil
}

func (r *repository) CreateText(ctx context.Context, chatID, content, fromID string) error {
	doc := textDocument{
		ID:      uuid.NewString(),
		Content: content,
		From:    fromID,
		ChatID:  chatID,
	}
	_, err := r.store.InsertOne(ctx, storage.TextsCollection, doc)
	return err
}

func (r *repository) TextsForChat(ctx context.Context, chatID string) ([]*Text, error) {
	var docs []textDocument
	err := r.store.FindAll(ctx, storage.TextsCollection, bson.M{"chat_id": chatID}, &docs)
	if err != nil {
		return nil, err
	}

	texts := make([]*Text, len(docs))
	for i, doc := range docs {
		texts[i] = &Text{
			ID:      doc.ID,
			Content: doc.Content,
			From:    doc.From,
			ChatID:  doc.ChatID,
		}
	}
	return texts, nil
}
