package chat

import (
	"github.com/google/wire"

	"oxide/internal/storage"
	"oxide/internal/user"
)

// ProvideRepository is a Wire provider function that creates a chat.Repository
func ProvideRepository(store storage.Store) Repository {
	return NewRepository(store)
}

// ProvideGrpcHandler is a Wire provider function that creates the ChatService handler
func ProvideGrpcHandler(users user.Repository, chats Repository) *Handler {
	return NewChatHandler(users, chats)
}

var Set = wire.NewSet(ProvideRepository, ProvideGrpcHandler)
