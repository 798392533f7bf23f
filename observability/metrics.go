// Package observability aggregates process-wide counters. There is no
// external metrics surface; the reporter worker logs snapshots instead.
package observability

import (
	"runtime"
	"sync/atomic"
)

type Metrics struct {
	UpdatesSeen     atomic.Uint64
	SessionsStarted atomic.Uint64
	SessionsPassed  atomic.Uint64
	SessionsFailed  atomic.Uint64
	CommandsHandled atomic.Uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Snapshot captures the counters together with Go runtime memory stats.
type Snapshot struct {
	UpdatesSeen     uint64
	SessionsStarted uint64
	SessionsPassed  uint64
	SessionsFailed  uint64
	CommandsHandled uint64
	AllocMemMb      uint64
	NumGC           uint32
}

func (m *Metrics) Snapshot() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Snapshot{
		UpdatesSeen:     m.UpdatesSeen.Load(),
		SessionsStarted: m.SessionsStarted.Load(),
		SessionsPassed:  m.SessionsPassed.Load(),
		SessionsFailed:  m.SessionsFailed.Load(),
		CommandsHandled: m.CommandsHandled.Load(),
		AllocMemMb:      ms.Alloc / 1024 / 1024,
		NumGC:           ms.NumGC,
	}
}
