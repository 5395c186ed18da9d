package chat

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"oxide/internal/proto"
	"oxide/internal/user"
	"oxide/pkg/logx"
)

// streamBuffer is the capacity of the hand-off channel between the fetch
// producer and the outbound stream.
const streamBuffer = 4

// Handler implements the ChatService RPC surface over the user and chat
// repositories. It holds no per-call state.
type Handler struct {
	proto.UnimplementedChatServiceServer
	users user.Repository
	chats Repository
}

func NewChatHandler(users user.Repository, chats Repository) *Handler {
	return &Handler{
		users: users,
		chats: chats,
	}
}

// LoginUser never fails at the protocol level: a wrong password, an unknown
// username and an unreachable store all come back as logged_in=false.
func (h *Handler) LoginUser(ctx context.Context, req *proto.SignupOrLoginUserRequest) (*proto.LoginInfo, error) {
	loggedIn, err := h.users.Authenticate(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		logx.Error(err, "failed to fetch user document", "username", req.GetUsername())
		return &proto.LoginInfo{LoggedIn: false}, nil
	}
	return &proto.LoginInfo{LoggedIn: loggedIn}, nil
}

// SignupUser registers a new account unless the username is taken. A store
// failure during the existence check is treated as "user does not exist"
// and signup falls through to the insert (fail-open).
func (h *Handler) SignupUser(ctx context.Context, req *proto.SignupOrLoginUserRequest) (*proto.LoginInfo, error) {
	exists, err := h.users.ExistsByID(ctx, req.GetUsername())
	if err != nil {
		logx.Error(err, "failed to check existing user", "username", req.GetUsername())
	}
	if exists {
		return &proto.LoginInfo{LoggedIn: false}, nil
	}

	created, err := h.users.Create(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		logx.Error(err, "failed to create user", "username", req.GetUsername())
		return &proto.LoginInfo{LoggedIn: false}, nil
	}
	return &proto.LoginInfo{LoggedIn: created}, nil
}

func (h *Handler) CreateNewChat(ctx context.Context, req *proto.CreateNewChatRequest) (*proto.Chat, error) {
	logx.Debug("creating chat", "from", req.GetFrom(), "to", req.GetTo())

	id, err := h.chats.Create(ctx, req.GetFrom(), req.GetTo())
	if err != nil {
		logx.Error(err, "failed to create chat", "from", req.GetFrom(), "to", req.GetTo())
		return nil, status.Error(codes.InvalidArgument, "could not create chat")
	}

	return &proto.Chat{
		Id:             id,
		ParticipantIds: []string{req.GetFrom(), req.GetTo()},
	}, nil
}

// SendTextToUser acknowledges with the fixed "sent" payload whether or not
// the text was stored; a store failure is only logged.
func (h *Handler) SendTextToUser(ctx context.Context, req *proto.SendTextToUserRequest) (*proto.TextSent, error) {
	if err := h.chats.CreateText(ctx, req.GetChatId(), req.GetContent(), req.GetFrom()); err != nil {
		logx.Error(err, "failed to store text", "chat_id", req.GetChatId(), "from", req.GetFrom())
	} else {
		logx.Debug("stored text", "chat_id", req.GetChatId(), "from", req.GetFrom())
	}
	return &proto.TextSent{Text: "sent"}, nil
}

func (h *Handler) FetchTextsForChat(req *proto.FetchTextsForChatRequest, stream proto.ChatService_FetchTextsForChatServer) error {
	texts, err := h.chats.TextsForChat(stream.Context(), req.GetChatId())
	if err != nil {
		logx.Error(err, "failed to fetch texts", "chat_id", req.GetChatId())
		return nil
	}

	out := make([]*proto.Text, len(texts))
	for i, t := range texts {
		out[i] = ConvertTextToProtoText(t)
	}
	return streamAll(stream.Context(), out, stream.Send)
}

func (h *Handler) FetchChatsForUser(req *proto.FetchChatsForUserRequest, stream proto.ChatService_FetchChatsForUserServer) error {
	logx.Debug("fetching chats for user", "user_id", req.GetUserId())

	chats, err := h.chats.ForUser(stream.Context(), req.GetUserId())
	if err != nil {
		logx.Error(err, "failed to fetch chats", "user_id", req.GetUserId())
		return nil
	}

	out := make([]*proto.Chat, len(chats))
	for i, c := range chats {
		out[i] = ConvertChatToProtoChat(c)
	}
	return streamAll(stream.Context(), out, stream.Send)
}

func (h *Handler) FetchUsers(_ *proto.FetchUsersRequest, stream proto.ChatService_FetchUsersServer) error {
	users, err := h.users.All(stream.Context())
	if err != nil {
		logx.Error(err, "failed to fetch users")
		return nil
	}

	out := make([]*proto.User, len(users))
	for i, u := range users {
		out[i] = user.ConvertUserToProtoUser(u)
	}
	return streamAll(stream.Context(), out, stream.Send)
}

// streamAll delivers the eagerly fetched result set one element at a time.
// A detached producer feeds a bounded channel so a slow consumer applies
// backpressure, and a disconnected consumer cancels the producer through
// the stream context rather than failing it.
func streamAll[T any](ctx context.Context, elems []T, send func(T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan T, streamBuffer)
	go func() {
		defer close(ch)
		for _, elem := range elems {
			select {
			case ch <- elem:
			case <-ctx.Done():
				return
			}
		}
	}()

	for elem := range ch {
		if err := send(elem); err != nil {
			return err
		}
	}
	return nil
}
