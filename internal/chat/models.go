package chat

// Chat is a conversation created between exactly two participants. The
// participant list keeps request order and is not deduplicated or checked
// against registered users.
type Chat struct {
	ID             string
	ParticipantIDs []string
}

// Text is a single message inside a chat. Immutable once stored; there is
// no delivery or read state.
type Text struct {
	ID      string
	Content string
	From    string
	ChatID  string
}

type chatDocument struct {
	ID             string   `bson:"id"`
	ParticipantIDs []string `bson:"participant_ids"`

	// TextIDs is written empty at creation and never appended to. Texts
	// are always queried by chat_id; the field stays for compatibility
	// with existing documents and fixtures.
	TextIDs []string `bson:"text_ids"`
}

type textDocument struct {
	ID      string `bson:"id"`
	Content string `bson:"content"`
	From    string `bson:"from"`
	ChatID  string `bson:"chat_id"`
}
