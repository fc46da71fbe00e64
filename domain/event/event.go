package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	MessageSanitizedType Type = "MESSAGE_SANITIZED"
	MessageRejectedType  Type = "MESSAGE_REJECTED"
	CensorshipHitType    Type = "CENSORSHIP_HIT"
	SecurityType         Type = "SECURITY"
)

type Event struct {
	Type      Type
	CreatedAt time.Time
	Payload   any
}

func New(t Type, payload any) Event {
	return Event{Type: t, CreatedAt: time.Now().UTC(), Payload: payload}
}

// MessageSanitized is emitted once a message has been stored.
// Content is the redacted text, never the raw input.
type MessageSanitized struct {
	MessageID    uuid.UUID
	Conversation string
	SenderID     string
	Content      string
	RuleHits     map[string]int
	At           time.Time
}

type MessageRejected struct {
	Conversation string
	SenderID     string
	Policy       string
	Reason       string
	At           time.Time
}

type CensorshipHit struct {
	Conversation string
	Word         string
}

type SecurityKind string

const (
	LoginFailed     SecurityKind = "LOGIN_FAILED"
	UserRegistered  SecurityKind = "USER_REGISTERED"
	AccessDenied    SecurityKind = "ACCESS_DENIED"
	BlocklistUpdate SecurityKind = "BLOCKLIST_UPDATE"
	AdminSeeded     SecurityKind = "ADMIN_SEEDED"
)

// Security is an audit trail entry for authentication and admin actions.
type Security struct {
	Kind    SecurityKind
	Subject string
	Detail  string
}
