// The seeder loads the JSON fixtures into the document store so a fresh
// database has users, chats and texts to serve. With -dry-run it loads into
// an in-memory store instead, which only validates the fixture files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"oxide/config"
	"oxide/internal/storage"
	"oxide/pkg/logx"
)

type userFixture struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Password string `json:"password,omitempty" bson:"password,omitempty"`
}

type chatFixture struct {
	ID             string   `json:"id" bson:"id"`
	ParticipantIDs []string `json:"participant_ids" bson:"participant_ids"`
	TextIDs        []string `json:"text_ids" bson:"text_ids"`
}

type textFixture struct {
	ID      string `json:"id" bson:"id"`
	Content string `json:"content" bson:"content"`
	From    string `json:"from" bson:"from"`
	ChatID  string `json:"chat_id" bson:"chat_id"`
}

func main() {
	dir := flag.String("fixtures", "fixtures", "directory containing users.json, chats.json and texts.json")
	dryRun := flag.Bool("dry-run", false, "load into an in-memory store instead of mongo")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logx.Init(true)
		logx.Fatal(err, "failed to load config")
	}
	logx.Init(cfg.IsDevelopment())

	ctx := context.Background()

	var store storage.Store
	if *dryRun {
		store = storage.NewMemoryStore()
	} else {
		mongoStore, err := storage.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase, cfg.StoreTimeout)
		if err != nil {
			logx.Fatal(err, "failed to connect to store", "uri", cfg.MongoURI)
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				logx.Error(err, "failed to close store")
			}
		}()
		store = mongoStore
	}

	users, err := seedCollection[userFixture](ctx, store, filepath.Join(*dir, "users.json"), storage.UsersCollection)
	if err != nil {
		logx.Fatal(err, "failed to seed users")
	}
	chats, err := seedCollection[chatFixture](ctx, store, filepath.Join(*dir, "chats.json"), storage.ChatsCollection)
	if err != nil {
		logx.Fatal(err, "failed to seed chats")
	}
	texts, err := seedCollection[textFixture](ctx, store, filepath.Join(*dir, "texts.json"), storage.TextsCollection)
	if err != nil {
		logx.Fatal(err, "failed to seed texts")
	}

	logx.Info("seeding complete", "users", users, "chats", chats, "texts", texts)
}

func seedCollection[T any](ctx context.Context, store storage.Store, path, collection string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer f.Close()

	var docs []T
	if err := json.NewDecoder(f).Decode(&docs); err != nil {
		return 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	for _, doc := range docs {
		if _, err := store.InsertOne(ctx, collection, doc); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", collection, err)
		}
	}
	return len(docs), nil
}
