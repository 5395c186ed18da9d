//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"oxide/internal/chat"
	"oxide/internal/storage"
	"oxide/internal/user"
)

func initializeChatHandler(store storage.Store) *chat.Handler {
	wire.Build(user.Set, chat.Set)

	return &chat.Handler{}
}
