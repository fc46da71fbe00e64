package domain

import "time"

type SendMessageCommand struct {
	Conversation ConversationID `validate:"required"`
	SenderID     string         `validate:"required"`
	Content      string
	At           time.Time
}

type GetMessagesCommand struct {
	Conversation ConversationID `validate:"required"`
	Cursor       *string
}

type SearchMessagesCommand struct {
	Conversation ConversationID `validate:"required"`
	Terms        string         `validate:"required"`
	Limit        int            `validate:"gte=0,lte=100"`
}

// DraftCheck is the live feedback computed while a message is typed.
type DraftCheck struct {
	Filtered  string
	Forbidden bool
	Word      string
}
