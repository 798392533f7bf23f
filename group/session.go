package group

import (
	"context"
	"time"

	"github.com/google/uuid"

	"sticker-gate/domain"
)

// Sticker the bot sends to pass its own challenge after (re)joining.
const selfProofSticker = "CAACAgUAAxkBAAEI_IFgKqYpeH28bSvB_qd3ybC5vS-RxwACsgADVl_YH824--1Q953HHgQ"

// outcome is the value a resolver delivers to its waiting session.
type outcome struct {
	passed bool
	// proof is the message that triggered the pass, 0 for a forced pass.
	proof int
}

// runSession drives one challenge for one joining user: set the pending
// flag, post the challenge, then race the timeout against an external
// resolution with first-settled-wins semantics. The losing branch has no
// side effects once superseded.
//
// The pending flag is written without TTL. After a process restart a flag
// may survive with no live resolver; such a user can neither resolve nor
// time out until an admin runs /reverify, /pass or /fail. Known defect of
// the durable model, kept visible rather than papered over.
func (e *Engine) runSession(ctx context.Context, joinMsg domain.Message, u domain.User) {
	log := e.log.With("user", u.ID, "session", uuid.NewString())
	if e.exists(ctx, e.userKey(u.ID, "pending")) {
		log.Info("Duplicate join for a pending user, ignoring")
		return
	}
	e.metrics.SessionsStarted.Add(1)
	log.Info("Challenge started")
	e.set(ctx, e.userKey(u.ID, "pending"), "true", 0)
	hello := e.send(ctx, e.render(ctx, e.template(ctx, "onjoin"), u), joinMsg.ID)

	ch := make(chan outcome, 1)
	e.mu.Lock()
	e.resolvers[u.ID] = ch
	e.mu.Unlock()

	if u.ID == e.bot.Me().ID {
		go e.passSelf(ctx, u)
	}

	timer := time.NewTimer(e.timeout(ctx))
	defer timer.Stop()

	var res outcome
	select {
	case res = <-ch:
	case <-timer.C:
		if e.takeResolver(u.ID, ch) {
			res = outcome{passed: false}
		} else {
			// A resolution won the race against the timer; honor it.
			res = <-ch
		}
	}

	if !e.exists(ctx, e.key("verbose")) {
		e.bot.Delete(ctx, e.id, hello)
	}
	if res.passed {
		log.Info("Challenge passed")
		return
	}
	log.Info("Challenge failed")
	if !e.exists(ctx, e.key("verbose")) {
		e.bot.Delete(ctx, e.id, joinMsg.ID)
	}
	// No-op when an admin /fail already ran the fail handling.
	e.onFail(ctx, u)
}

// onPass resolves a session as passed. Idempotent: once the pending flag
// is cleared, later invocations do nothing.
func (e *Engine) onPass(ctx context.Context, m domain.Message, u domain.User) {
	if !e.exists(ctx, e.userKey(u.ID, "pending")) {
		return
	}
	e.del(ctx, e.userKey(u.ID, "pending"))
	e.metrics.SessionsPassed.Add(1)
	e.resolve(u.ID, outcome{passed: true, proof: m.ID})

	if e.exists(ctx, e.key("quiet")) {
		e.bot.Delete(ctx, e.id, m.ID)
		return
	}
	reply := e.send(ctx, e.render(ctx, e.template(ctx, "onpass"), u), m.ID)
	if e.exists(ctx, e.key("verbose")) {
		return
	}
	go func() {
		// The confirmation is transient: clean both it and the proof after
		// one more timeout interval.
		if !sleep(ctx, e.timeout(ctx)) {
			return
		}
		e.bot.Delete(ctx, e.id, m.ID)
		e.bot.Delete(ctx, e.id, reply)
	}()
}

// onFail resolves a session as failed and applies the configured action.
// Idempotent the same way onPass is.
func (e *Engine) onFail(ctx context.Context, u domain.User) {
	if !e.exists(ctx, e.userKey(u.ID, "pending")) {
		return
	}
	e.del(ctx, e.userKey(u.ID, "pending"))
	e.metrics.SessionsFailed.Add(1)
	e.resolve(u.ID, outcome{passed: false})

	switch e.failAction(ctx) {
	case domain.ActionKick:
		e.bot.Ban(ctx, e.id, u.ID)
		e.bot.Unban(ctx, e.id, u.ID)
	case domain.ActionMute:
		e.bot.Restrict(ctx, e.id, u.ID)
	case domain.ActionBan:
		e.bot.Ban(ctx, e.id, u.ID)
	}
	e.del(ctx, e.userKey(u.ID, "role"))

	if e.exists(ctx, e.key("quiet")) {
		return
	}
	notice := e.send(ctx, e.render(ctx, e.template(ctx, "onfail"), u), 0)
	if e.exists(ctx, e.key("verbose")) {
		return
	}
	go func() {
		if !sleep(ctx, e.timeout(ctx)) {
			return
		}
		e.bot.Delete(ctx, e.id, notice)
	}()
}

// passSelf proves liveness when the bot is the joining identity; the
// sticker doubles as a demonstration of a valid proof.
func (e *Engine) passSelf(ctx context.Context, u domain.User) {
	m, ok := e.bot.SendSticker(ctx, e.id, selfProofSticker)
	if !ok {
		return
	}
	e.onPass(ctx, m, u)
}

// resolve fires and removes the user's resolver. Removal and first use are
// atomic under the engine mutex, so exactly one party ever resolves a
// session; later attempts find no resolver and are no-ops.
func (e *Engine) resolve(user int64, res outcome) {
	e.mu.Lock()
	ch, ok := e.resolvers[user]
	if ok {
		delete(e.resolvers, user)
	}
	e.mu.Unlock()
	if ok {
		ch <- res
	}
}

// takeResolver removes the slot only if it still holds ch, telling the
// timed-out session whether it owns the resolution.
func (e *Engine) takeResolver(user int64, ch chan outcome) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	current, ok := e.resolvers[user]
	if !ok || current != ch {
		return false
	}
	delete(e.resolvers, user)
	return true
}

// sleep waits for d unless the context ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
