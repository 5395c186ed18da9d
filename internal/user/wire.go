package user

import (
	"github.com/google/wire"

	"oxide/internal/storage"
)

// ProvideRepository is a Wire provider function that creates a user.Repository
func ProvideRepository(store storage.Store) Repository {
	return NewRepository(store)
}

var Set = wire.NewSet(ProvideRepository)
