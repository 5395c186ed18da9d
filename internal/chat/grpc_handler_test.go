package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"oxide/internal/proto"
	"oxide/internal/storage"
	"oxide/internal/user"
)

func newTestHandler() (*Handler, *storage.MemoryStore) {
	store := storage.NewMemoryStore()
	return NewChatHandler(user.NewRepository(store), NewRepository(store)), store
}

// flakyStore wraps a working store and lets single operations be forced to
// fail, to exercise the error-swallowing paths of the handler.
type flakyStore struct {
	storage.Store
	findOneErr error
	findAllErr error
	insertErr  error
}

func (s *flakyStore) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	if s.findOneErr != nil {
		return s.findOneErr
	}
	return s.Store.FindOne(ctx, collection, filter, out)
}

func (s *flakyStore) FindAll(ctx context.Context, collection string, filter bson.M, out any) error {
	if s.findAllErr != nil {
		return s.findAllErr
	}
	return s.Store.FindAll(ctx, collection, filter, out)
}

func (s *flakyStore) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	return s.Store.InsertOne(ctx, collection, doc)
}

type textStream struct {
	grpc.ServerStream
	ctx     context.Context
	sent    []*proto.Text
	sendErr error
}

func (s *textStream) Context() context.Context { return s.ctx }
func (s *textStream) Send(t *proto.Text) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, t)
	return nil
}

type chatStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*proto.Chat
}

func (s *chatStream) Context() context.Context { return s.ctx }
func (s *chatStream) Send(c *proto.Chat) error {
	s.sent = append(s.sent, c)
	return nil
}

type userStream struct {
	grpc.ServerStream
	ctx  context.Context
	sent []*proto.User
}

func (s *userStream) Context() context.Context { return s.ctx }
func (s *userStream) Send(u *proto.User) error {
	s.sent = append(s.sent, u)
	return nil
}

func TestSignupAndLogin(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	resp, err := h.SignupUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, resp.GetLoggedIn())

	// A taken username refuses signup and leaves the stored password alone.
	resp, err = h.SignupUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw2"})
	require.NoError(t, err)
	assert.False(t, resp.GetLoggedIn())

	resp, err = h.LoginUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, resp.GetLoggedIn())

	resp, err = h.LoginUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw2"})
	require.NoError(t, err)
	assert.False(t, resp.GetLoggedIn())
}

func TestLoginUnknownUser(t *testing.T) {
	h, _ := newTestHandler()

	resp, err := h.LoginUser(context.Background(), &proto.SignupOrLoginUserRequest{Username: "ghost", Password: "pw"})
	require.NoError(t, err)
	assert.False(t, resp.GetLoggedIn())
}

func TestLoginStoreErrorIsNotSurfaced(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore(), findOneErr: errors.New("store down")}
	h := NewChatHandler(user.NewRepository(store), NewRepository(store))

	resp, err := h.LoginUser(context.Background(), &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.False(t, resp.GetLoggedIn())
}

func TestSignupFailsOpenOnExistenceCheck(t *testing.T) {
	ctx := context.Background()
	store := &flakyStore{Store: storage.NewMemoryStore(), findOneErr: errors.New("store down")}
	h := NewChatHandler(user.NewRepository(store), NewRepository(store))

	// The existence check fails, signup proceeds to the insert anyway.
	resp, err := h.SignupUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, resp.GetLoggedIn())

	store.findOneErr = nil
	resp, err = h.LoginUser(ctx, &proto.SignupOrLoginUserRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.True(t, resp.GetLoggedIn())
}

func TestCreateNewChat(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	// Participants need not be registered users.
	resp, err := h.CreateNewChat(ctx, &proto.CreateNewChatRequest{From: "alice", To: "bob"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetId())
	assert.Equal(t, []string{"alice", "bob"}, resp.GetParticipantIds())
}

func TestCreateNewChatStoreError(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore(), insertErr: errors.New("store down")}
	h := NewChatHandler(user.NewRepository(store), NewRepository(store))

	_, err := h.CreateNewChat(context.Background(), &proto.CreateNewChatRequest{From: "alice", To: "bob"})
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSendTextAlwaysAcks(t *testing.T) {
	ctx := context.Background()

	t.Run("stored", func(t *testing.T) {
		h, _ := newTestHandler()
		resp, err := h.SendTextToUser(ctx, &proto.SendTextToUserRequest{ChatId: "c1", Content: "hi", From: "alice"})
		require.NoError(t, err)
		assert.Equal(t, "sent", resp.GetText())
	})

	t.Run("store failure", func(t *testing.T) {
		store := &flakyStore{Store: storage.NewMemoryStore(), insertErr: errors.New("store down")}
		h := NewChatHandler(user.NewRepository(store), NewRepository(store))
		resp, err := h.SendTextToUser(ctx, &proto.SendTextToUserRequest{ChatId: "c1", Content: "hi", From: "alice"})
		require.NoError(t, err)
		assert.Equal(t, "sent", resp.GetText())
	})
}

func TestSendThenFetchTexts(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	created, err := h.CreateNewChat(ctx, &proto.CreateNewChatRequest{From: "alice", To: "bob"})
	require.NoError(t, err)
	chatID := created.GetId()

	sent, err := h.SendTextToUser(ctx, &proto.SendTextToUserRequest{ChatId: chatID, Content: "hi", From: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "sent", sent.GetText())

	stream := &textStream{ctx: ctx}
	err = h.FetchTextsForChat(&proto.FetchTextsForChatRequest{ChatId: chatID}, stream)
	require.NoError(t, err)

	require.Len(t, stream.sent, 1)
	assert.Equal(t, "hi", stream.sent[0].GetContent())
	assert.Equal(t, "alice", stream.sent[0].GetFrom())
	assert.Equal(t, chatID, stream.sent[0].GetChatId())
}

func TestFetchTextsBackendErrorYieldsEmptyStream(t *testing.T) {
	store := &flakyStore{Store: storage.NewMemoryStore(), findAllErr: errors.New("store down")}
	h := NewChatHandler(user.NewRepository(store), NewRepository(store))

	stream := &textStream{ctx: context.Background()}
	err := h.FetchTextsForChat(&proto.FetchTextsForChatRequest{ChatId: "c1"}, stream)
	require.NoError(t, err)
	assert.Empty(t, stream.sent)
}

func TestFetchChatsForUser(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	ab, err := h.CreateNewChat(ctx, &proto.CreateNewChatRequest{From: "alice", To: "bob"})
	require.NoError(t, err)
	_, err = h.CreateNewChat(ctx, &proto.CreateNewChatRequest{From: "bob", To: "carol"})
	require.NoError(t, err)

	stream := &chatStream{ctx: ctx}
	require.NoError(t, h.FetchChatsForUser(&proto.FetchChatsForUserRequest{UserId: "alice"}, stream))

	require.Len(t, stream.sent, 1)
	assert.Equal(t, ab.GetId(), stream.sent[0].GetId())
	assert.Equal(t, []string{"alice", "bob"}, stream.sent[0].GetParticipantIds())
}

func TestFetchUsersStreamsNames(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	for _, name := range []string{"alice", "bob"} {
		_, err := h.SignupUser(ctx, &proto.SignupOrLoginUserRequest{Username: name, Password: "pw"})
		require.NoError(t, err)
	}

	stream := &userStream{ctx: ctx}
	require.NoError(t, h.FetchUsers(&proto.FetchUsersRequest{}, stream))

	require.Len(t, stream.sent, 2)
	for _, u := range stream.sent {
		assert.Equal(t, u.GetId(), u.GetName())
	}
}

func TestStreamSendFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	h, _ := newTestHandler()

	chatID, err := h.chats.Create(ctx, "alice", "bob")
	require.NoError(t, err)
	for range 10 {
		require.NoError(t, h.chats.CreateText(ctx, chatID, "hi", "alice"))
	}

	// A disconnected consumer surfaces as a Send error; the handler must
	// return it instead of panicking, and the producer must wind down.
	stream := &textStream{ctx: ctx, sendErr: errors.New("transport closed")}
	err = h.FetchTextsForChat(&proto.FetchTextsForChatRequest{ChatId: chatID}, stream)
	assert.Error(t, err)
}

func TestStreamAllStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The producer sees the canceled context, the consumer errors on its
	// first delivery; either way the stream ends well short of the input.
	elems := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	var got []int
	_ = streamAll(ctx, elems, func(v int) error {
		got = append(got, v)
		return ctx.Err()
	})
	assert.Less(t, len(got), len(elems))
}
