package user

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"oxide/internal/storage"
)

// Repository exposes the user operations of the service, each a single
// round trip to the store.
type Repository interface {
	// ExistsByID reports whether a user with the given id is registered.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// Authenticate reports whether a user with the given id exists and its
	// stored password equals the given one. A missing user or a missing
	// password field is a plain false, not an error.
	Authenticate(ctx context.Context, id, password string) (bool, error)

	// Create registers a new user. Uniqueness of the id is not re-checked
	// here; concurrent signups for the same id can both succeed.
	Create(ctx context.Context, username, password string) (bool, error)

	// All returns every registered user, unordered.
	All(ctx context.Context) ([]*User, error)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var doc document
	err := r.store.FindOne(ctx, storage.UsersCollection, bson.M{"id": id}, &doc)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) Authenticate(ctx context.Context, id, password string) (bool, error) {
	var doc document
	err := r.store.FindOne(ctx, storage.UsersCollection, bson.M{"id": id}, &doc)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if doc.Password == "" {
		return false, nil
	}
	// SECURITY: plain equality over a plaintext password, per the stored
	// document shape.
	return doc.Password == password, nil
}

func (r *repository) Create(ctx context.Context, username, password string) (bool, error) {
	doc := document{
		ID:       username,
		Name:     username,
		Password: password,
	}
	if _, err := r.store.InsertOne(ctx, storage.UsersCollection, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (r *repository) All(ctx context.Context) ([]*User, error) {
	var docs []document
	if err := r.store.FindAll(ctx, storage.UsersCollection, nil, &docs); err != nil {
		return nil, err
	}

	users := make([]*User, len(docs))
	for i, doc := range docs {
		users[i] = &User{ID: doc.ID, Name: doc.Name}
	}
	return users, nil
}
