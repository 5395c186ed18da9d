// Package storage is the persistence boundary of the service. It exposes the
// three operations the repositories need from a document store: a filtered
// single-document lookup, a filtered scan and a single-document insert.
package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// Collection names, matching the layout of the oxide database.
const (
	UsersCollection = "user"
	ChatsCollection = "chats"
	TextsCollection = "texts"
)

// Store is an opaque document store. Filters are field-equality maps; a
// filter value matched against an array field tests membership. No
// transactions or ordering guarantees are assumed.
type Store interface {
	// FindOne decodes the first document matching filter into out.
	// Returns ErrNotFound when no document matches.
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error

	// FindAll decodes every document matching filter into out, which must
	// be a pointer to a slice. A nil filter matches the whole collection.
	FindAll(ctx context.Context, collection string, filter bson.M, out any) error

	// InsertOne stores a new document and returns its store-assigned id.
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
}
