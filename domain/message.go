// Package domain contains core concepts of the marketplace messaging.
// Messages are immutable once they went through moderation.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ConversationID identifies the thread between a buyer and a seller about one ad.
type ConversationID string

func NewConversationID(adID, buyerID, sellerID string) ConversationID {
	return ConversationID(fmt.Sprintf("%s:%s:%s", adID, buyerID, sellerID))
}

func (c ConversationID) String() string { return string(c) }

// Message represents a moderated message, Content is what participants see.
// Redacted is set whenever Content differs from the trimmed text that was sent.
type Message struct {
	ID             uuid.UUID
	Conversation   ConversationID
	SenderID       string
	Content        string
	OriginalLength int
	Redacted       bool
	At             time.Time
}
