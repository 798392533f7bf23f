package workers

import (
	"context"
	"log/slog"

	"sticker-gate/domain"
	"sticker-gate/group"
)

// UpdateSource yields inbound chat messages until its channel closes.
type UpdateSource interface {
	Updates(ctx context.Context) <-chan domain.Message
}

// PollerWorker fans inbound updates out to the owning chat engine. Each
// update runs in its own goroutine: verification sessions block for up to
// the chat timeout and must never stall the poll loop.
type PollerWorker struct {
	source   UpdateSource
	registry *group.Registry
	log      *slog.Logger
}

func NewPollerWorker(source UpdateSource, registry *group.Registry, log *slog.Logger) *PollerWorker {
	return &PollerWorker{source: source, registry: registry, log: log}
}

func (w *PollerWorker) Run(ctx context.Context) error {
	updates := w.source.Updates(ctx)
	w.log.Info("Polling for updates")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case m, ok := <-updates:
			if !ok {
				w.log.Info("Update stream closed")
				return nil
			}
			go w.registry.Get(m.ChatID).HandleMessage(ctx, m)
		}
	}
}
