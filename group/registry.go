package group

import (
	"log/slog"
	"sync"

	"sticker-gate/contract"
	"sticker-gate/observability"
)

// Deps bundles everything an engine needs at construction time.
type Deps struct {
	Store      contract.IStore
	Messenger  contract.IMessenger
	Translator contract.ITranslator
	Metrics    *observability.Metrics
	Log        *slog.Logger
}

// Registry hands out the single engine owning each chat's sessions.
// Engines are created lazily and never evicted: resolvers registered while
// handling one update must stay visible to every later update for the same
// chat, and the map grows with the number of chats seen since boot.
type Registry struct {
	mu      sync.Mutex
	engines map[int64]*Engine
	deps    Deps
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		engines: make(map[int64]*Engine),
		deps:    deps,
	}
}

func (r *Registry) Get(chatID int64) *Engine {
	r.mu.Lock()
	defer r.mu.Unlock()
	engine, ok := r.engines[chatID]
	if !ok {
		engine = NewEngine(chatID, r.deps)
		r.engines[chatID] = engine
	}
	return engine
}

// Len reports the number of chats seen so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.engines)
}
