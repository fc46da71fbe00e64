package event

import (
	"log/slog"
	"maps"
	"sync"

	"marketchat/errors"
)

// CensoredHandler counts how often each redaction rule and each blocked word fired.
type CensoredHandler struct {
	mu       sync.Mutex
	log      *slog.Logger
	counter  uint64
	ruleHits map[string]uint64
	wordHits map[string]uint64
}

type CensorshipStats struct {
	Messages uint64
	Rules    map[string]uint64
	Words    map[string]uint64
}

func NewCensoredHandler(log *slog.Logger) *CensoredHandler {
	return &CensoredHandler{
		log:      log,
		ruleHits: make(map[string]uint64),
		wordHits: make(map[string]uint64),
	}
}

func (h *CensoredHandler) Handle(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch event.Type {
	case MessageSanitizedType:
		payload, ok := event.Payload.(MessageSanitized)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		if len(payload.RuleHits) == 0 {
			return
		}
		h.counter++
		for rule, n := range payload.RuleHits {
			h.ruleHits[rule] += uint64(n)
		}
	case CensorshipHitType:
		payload, ok := event.Payload.(CensorshipHit)
		if !ok {
			h.log.Error(errors.ErrInvalidPayload.Error(), "type", event.Type)
			return
		}
		h.wordHits[payload.Word]++
	}
}

// Stats returns a copy of the counters.
func (h *CensoredHandler) Stats() CensorshipStats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return CensorshipStats{
		Messages: h.counter,
		Rules:    maps.Clone(h.ruleHits),
		Words:    maps.Clone(h.wordHits),
	}
}
