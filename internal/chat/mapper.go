package chat

import "oxide/internal/proto"

func ConvertChatToProtoChat(c *Chat) *proto.Chat {
	return &proto.Chat{
		Id:             c.ID,
		ParticipantIds: c.ParticipantIDs,
	}
}

func ConvertTextToProtoText(t *Text) *proto.Text {
	return &proto.Text{
		Id:      t.ID,
		Content: t.Content,
		From:    t.From,
		ChatId:  t.ChatID,
	}
}
