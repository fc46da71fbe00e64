package event

import (
	"log/slog"

	"marketchat/errors"

	"github.com/abadojack/whatlanggo"
)

// SecurityHandler writes the audit trail: rejected messages, redactions,
// authentication failures and admin actions.
type SecurityHandler struct {
	log *slog.Logger
}

func NewSecurityHandler(log *slog.Logger) *SecurityHandler {
	return &SecurityHandler{log: log}
}

func (h *SecurityHandler) Handle(event Event) {
	switch event.Type {
	case MessageRejectedType:
		payload, ok := event.Payload.(MessageRejected)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.log.Warn("Message rejected",
			"conversation_id", payload.Conversation,
			"sender_id", payload.SenderID,
			"policy", payload.Policy)
	case MessageSanitizedType:
		payload, ok := event.Payload.(MessageSanitized)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		if len(payload.RuleHits) == 0 {
			return
		}
		h.log.Info("Sensitive content redacted",
			"message_id", payload.MessageID,
			"conversation_id", payload.Conversation,
			"sender_id", payload.SenderID,
			"lang", DetectLanguage(payload.Content),
			"rules", payload.RuleHits)
	case SecurityType:
		payload, ok := event.Payload.(Security)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.log.Warn("Security event",
			"kind", payload.Kind,
			"subject", payload.Subject,
			"detail", payload.Detail,
			"at", event.CreatedAt)
	}
}

// DetectLanguage returns the ISO 639-1 code of the text.
func DetectLanguage(text string) string {
	return whatlanggo.Detect(text).Lang.Iso6391()
}
