package workers

import (
	"context"
	"log/slog"
	"time"

	"sticker-gate/group"
	"sticker-gate/observability"
)

// ReporterWorker periodically logs a metrics snapshot.
type ReporterWorker struct {
	metrics  *observability.Metrics
	registry *group.Registry
	interval time.Duration
	log      *slog.Logger
}

func NewReporterWorker(metrics *observability.Metrics, registry *group.Registry, interval time.Duration, log *slog.Logger) *ReporterWorker {
	return &ReporterWorker{metrics: metrics, registry: registry, interval: interval, log: log}
}

func (w *ReporterWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.report()
			w.log.Info("Reporter stopped")
			return ctx.Err()
		case <-ticker.C:
			w.report()
		}
	}
}

func (w *ReporterWorker) report() {
	stats := w.metrics.Snapshot()
	w.log.Info("Stats",
		"updates", stats.UpdatesSeen,
		"sessions_started", stats.SessionsStarted,
		"sessions_passed", stats.SessionsPassed,
		"sessions_failed", stats.SessionsFailed,
		"commands", stats.CommandsHandled,
		"chats", w.registry.Len(),
		"alloc_mb", stats.AllocMemMb,
		"num_gc", stats.NumGC,
	)
}
