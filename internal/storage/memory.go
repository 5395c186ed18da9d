package storage

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store with the same filter semantics as the
// mongo backend: scalar fields match by equality, array fields match by
// membership. It backs tests and the seeder's dry-run mode and is safe for
// concurrent use.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]bson.Raw)}
}

func (s *MemoryStore) FindOne(_ context.Context, collection string, filter bson.M, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, raw := range s.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if ok {
			return bson.Unmarshal(raw, out)
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) FindAll(_ context.Context, collection string, filter bson.M, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return ErrInvalidResult
	}

	slice := v.Elem()
	elemType := slice.Type().Elem()
	for _, raw := range s.collections[collection] {
		ok, err := matches(raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(raw, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
	}
	v.Elem().Set(slice)
	return nil
}

func (s *MemoryStore) InsertOne(_ context.Context, collection string, doc any) (string, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], bson.Raw(raw))

	return primitive.NewObjectID().Hex(), nil
}

// matches applies the store's filter semantics to a stored document.
func matches(raw bson.Raw, filter bson.M) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}

	for field, want := range filter {
		got, ok := doc[field]
		if !ok {
			return false, nil
		}
		if arr, isArray := got.(bson.A); isArray {
			if !contains(arr, want) {
				return false, nil
			}
			continue
		}
		if got != want {
			return false, nil
		}
	}
	return true, nil
}

func contains(arr bson.A, want any) bool {
	for _, elem := range arr {
		if elem == want {
			return true
		}
	}
	return false
}
