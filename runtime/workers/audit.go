package workers

import (
	"context"
	"log/slog"

	"marketchat/domain/event"
)

// AuditWorker drains the audit channel and hands each event to every handler.
type AuditWorker struct {
	events   chan event.Event
	handlers []event.Handler
	log      *slog.Logger
}

func NewAuditWorker(log *slog.Logger, events chan event.Event, handlers ...event.Handler) *AuditWorker {
	return &AuditWorker{events: events, handlers: handlers, log: log}
}

func (w *AuditWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping audit worker")
			return ctx.Err()
		case e, ok := <-w.events:
			if !ok {
				w.log.Debug("Audit channel is closed")
				return nil
			}
			for _, h := range w.handlers {
				h.Handle(e)
			}
		}
	}
}
