package services

import (
	"log/slog"

	"marketchat/domain/event"
)

// publish hands an event to the audit channel without ever blocking the caller.
func publish(log *slog.Logger, events chan<- event.Event, e event.Event) {
	if events == nil {
		return
	}
	select {
	case events <- e:
	default:
		log.Warn("Audit channel is full, event dropped", "type", e.Type)
	}
}
