// Package group implements the per-chat verification engine: configuration
// access, command dispatch and the concurrent challenge sessions gating
// new-member admission.
package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"sticker-gate/contract"
	"sticker-gate/domain"
	apperrors "sticker-gate/errors"
	"sticker-gate/observability"
)

const (
	defaultTimeout = 60 * time.Second
	roleCacheTTL   = 120 * time.Second
)

// Engine owns one chat: its durable configuration keys, its role cache and
// its in-flight verification sessions. Updates for the same chat may be
// handled concurrently; the resolver map is the only shared mutable state
// and is addressed by user id, so distinct users never contend.
type Engine struct {
	id      int64
	store   contract.IStore
	bot     contract.IMessenger
	tr      contract.ITranslator
	metrics *observability.Metrics
	log     *slog.Logger

	mu        sync.Mutex
	resolvers map[int64]chan outcome
}

func NewEngine(id int64, deps Deps) *Engine {
	return &Engine{
		id:        id,
		store:     deps.Store,
		bot:       deps.Messenger,
		tr:        deps.Translator,
		metrics:   deps.Metrics,
		log:       deps.Log.With("chat", id),
		resolvers: make(map[int64]chan outcome),
	}
}

// HandleMessage is the entry point for one inbound update.
func (e *Engine) HandleMessage(ctx context.Context, m domain.Message) {
	e.metrics.UpdatesSeen.Add(1)
	e.debugf(ctx, "Update", "msg", m.ID, "from", m.Sender.ID, "joined", len(m.Joined))
	for _, u := range m.Joined {
		e.del(ctx, e.userKey(u.ID, "role"))
		if u.ID == e.bot.Me().ID {
			// Our own rights must be re-validated before the feature may
			// run again in this chat.
			e.del(ctx, e.key("enabled"))
		}
	}
	if e.handleVerification(ctx, m) {
		return
	}
	if e.handleCommand(ctx, m) {
		e.metrics.CommandsHandled.Add(1)
	}
}

// handleVerification claims the update when it belongs to the challenge
// flow: proof or noise from a pending user, a join notice, or the
// discovery that the bot itself lost its admin rights.
func (e *Engine) handleVerification(ctx context.Context, m domain.Message) bool {
	if m.Sender.ID != 0 && e.exists(ctx, e.userKey(m.Sender.ID, "pending")) {
		if m.Sticker {
			e.onPass(ctx, m, m.Sender)
		} else {
			// Not a resolution: suppress the message and keep waiting.
			e.bot.Delete(ctx, e.id, m.ID)
		}
		return true
	}
	if !e.enabled(ctx) {
		return false
	}
	if e.role(ctx, e.bot.Me().ID, false) != domain.RoleAdmin {
		// Somebody revoked our rights. Shut the feature down instead of
		// half-working without delete and ban permissions.
		e.log.Warn("Lost admin rights, disabling and leaving")
		e.del(ctx, e.key("enabled"))
		e.send(ctx, e.format(ctx, "bot.angry"), 0)
		e.bot.Leave(ctx, e.id)
		return true
	}
	if m.IsJoinNotice() {
		for _, u := range m.Joined {
			go e.runSession(ctx, m, u)
		}
		return true
	}
	return false
}

// Durable configuration access. Keys live under chat:<id>: and every field
// is an independent key; store failures are logged and degrade to the
// neutral value so one flaky read never aborts an update.

func (e *Engine) key(field string) string {
	return fmt.Sprintf("chat:%d:%s", e.id, field)
}

func (e *Engine) userKey(user int64, field string) string {
	return fmt.Sprintf("chat:%d:user:%d:%s", e.id, user, field)
}

func (e *Engine) get(ctx context.Context, key string) (string, bool) {
	value, err := e.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, apperrors.ErrKeyNotFound) {
			e.log.Warn("Store read failed", "key", key, "err", err)
		}
		return "", false
	}
	return value, true
}

func (e *Engine) set(ctx context.Context, key string, value string, ttl time.Duration) {
	if err := e.store.Set(ctx, key, value, ttl); err != nil {
		e.log.Warn("Store write failed", "key", key, "err", err)
	}
}

func (e *Engine) del(ctx context.Context, key string) {
	if err := e.store.Del(ctx, key); err != nil {
		e.log.Warn("Store delete failed", "key", key, "err", err)
	}
}

func (e *Engine) exists(ctx context.Context, key string) bool {
	found, err := e.store.Exists(ctx, key)
	if err != nil {
		e.log.Warn("Store exists failed", "key", key, "err", err)
		return false
	}
	return found
}

func (e *Engine) enabled(ctx context.Context) bool {
	return e.exists(ctx, e.key("enabled"))
}

func (e *Engine) timeout(ctx context.Context) time.Duration {
	s, ok := e.get(ctx, e.key("timeout"))
	if !ok {
		return defaultTimeout
	}
	seconds, err := strconv.Atoi(s)
	if err != nil || seconds <= 0 {
		e.log.Warn("Invalid persisted timeout", "value", s)
		return defaultTimeout
	}
	return time.Duration(seconds) * time.Second
}

func (e *Engine) failAction(ctx context.Context) domain.Action {
	s, ok := e.get(ctx, e.key("action"))
	if !ok {
		return domain.ActionKick
	}
	action, known := domain.ParseAction(s)
	if !known {
		e.log.Warn("Invalid persisted action", "value", s)
	}
	return action
}

func (e *Engine) lang(ctx context.Context) string {
	s, ok := e.get(ctx, e.key("lang"))
	if !ok {
		return "en_US"
	}
	return s
}

// template returns the chat's override for onjoin/onpass/onfail, falling
// back to the locale default.
func (e *Engine) template(ctx context.Context, kind string) string {
	s, ok := e.get(ctx, e.key(kind+":template"))
	if !ok {
		return e.format(ctx, kind+".default")
	}
	return s
}

func (e *Engine) format(ctx context.Context, key string, args ...any) string {
	return e.tr.Format(e.lang(ctx), key, args...)
}

func (e *Engine) send(ctx context.Context, html string, replyTo int) int {
	return e.bot.Send(ctx, e.id, html, replyTo)
}

// debugf logs at info level when the chat's debug flag is set, so a single
// chat can be inspected without raising the global log level.
func (e *Engine) debugf(ctx context.Context, msg string, args ...any) {
	if e.exists(ctx, e.key("debug")) {
		e.log.Info(msg, args...)
		return
	}
	e.log.Debug(msg, args...)
}
