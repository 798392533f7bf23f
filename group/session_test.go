package group

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sticker-gate/domain"
)

func TestSession_PassBeforeTimeout(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.put(engine.key("enabled"), "true")
	store.put(engine.key("timeout"), "5")
	store.put(engine.key("quiet"), "true")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(10).
		Times(1)
	// The sticker that passed and the challenge prompt both get cleaned up.
	bot.EXPECT().Delete(gomock.Any(), testChatID, 55).Return(true).Times(1)
	bot.EXPECT().Delete(gomock.Any(), testChatID, 10).Return(true).Times(1)

	done := make(chan struct{})
	go func() {
		engine.runSession(ctx, message(5, 7, ""), ann)
		close(done)
	}()
	waitUntil(req, func() bool { return store.has(engine.userKey(7, "pending")) })

	proof := message(55, 7, "")
	proof.Sticker = true
	engine.onPass(ctx, proof, ann)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		req.FailNow("session did not settle after the pass")
	}
	req.False(store.has(engine.userKey(7, "pending")))
	req.Equal(uint64(1), engine.metrics.SessionsPassed.Load())
	req.Zero(engine.metrics.SessionsFailed.Load())
}

func TestSession_TimeoutKicks(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.put(engine.key("enabled"), "true")
	store.put(engine.key("timeout"), "1")
	store.put(engine.key("quiet"), "true")
	store.put(engine.userKey(7, "role"), "member")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(10).
		Times(1)
	bot.EXPECT().Delete(gomock.Any(), testChatID, 10).Return(true).Times(1)
	bot.EXPECT().Delete(gomock.Any(), testChatID, 5).Return(true).Times(1)
	// Default action: ban then unban, so the user may rejoin and retry.
	ban := bot.EXPECT().Ban(gomock.Any(), testChatID, int64(7)).Return(true).Times(1)
	bot.EXPECT().Unban(gomock.Any(), testChatID, int64(7)).Return(true).Times(1).After(ban)

	engine.runSession(ctx, message(5, 7, ""), ann)

	req.False(store.has(engine.userKey(7, "pending")))
	req.False(store.has(engine.userKey(7, "role")))
	req.Equal(uint64(1), engine.metrics.SessionsFailed.Load())
	req.Zero(engine.metrics.SessionsPassed.Load())
}

func TestSession_MuteAction(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.put(engine.key("timeout"), "1")
	store.put(engine.key("quiet"), "true")
	store.put(engine.key("action"), "mute")
	store.put(engine.userKey(7, "pending"), "true")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	bot.EXPECT().Restrict(gomock.Any(), testChatID, int64(7)).Return(true).Times(1)

	engine.onFail(ctx, ann)
	req.False(store.has(engine.userKey(7, "pending")))
}

func TestSession_DuplicateJoinIgnored(t *testing.T) {
	req := require.New(t)
	engine, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "pending"), "true")

	engine.runSession(ctx, message(5, 7, ""), domain.User{ID: 7, FirstName: "Ann"})

	req.Zero(engine.metrics.SessionsStarted.Load())
	req.True(store.has(engine.userKey(7, "pending")))
}

func TestSession_ResolutionIsIdempotent(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.put(engine.key("quiet"), "true")
	store.put(engine.key("timeout"), "1")
	store.put(engine.userKey(7, "pending"), "true")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	bot.EXPECT().Delete(gomock.Any(), testChatID, 55).Return(true).Times(1)

	proof := message(55, 7, "")
	proof.Sticker = true
	engine.onPass(ctx, proof, ann)
	// A later fail must find the session already settled and do nothing;
	// the mock has no Ban expectation to catch a regression.
	engine.onFail(ctx, ann)
	engine.onPass(ctx, proof, ann)

	req.Equal(uint64(1), engine.metrics.SessionsPassed.Load())
	req.Zero(engine.metrics.SessionsFailed.Load())
}

func TestSession_ExternalFailBeatsTimeout(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.put(engine.key("enabled"), "true")
	store.put(engine.key("timeout"), "2")
	store.put(engine.key("quiet"), "true")
	ann := domain.User{ID: 7, FirstName: "Ann"}

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(10).
		Times(1)
	bot.EXPECT().Delete(gomock.Any(), testChatID, gomock.Any()).Return(true).AnyTimes()
	bot.EXPECT().Ban(gomock.Any(), testChatID, int64(7)).Return(true).Times(1)
	bot.EXPECT().Unban(gomock.Any(), testChatID, int64(7)).Return(true).Times(1)

	done := make(chan struct{})
	go func() {
		engine.runSession(ctx, message(5, 7, ""), ann)
		close(done)
	}()
	waitUntil(req, func() bool { return store.has(engine.userKey(7, "pending")) })

	engine.onFail(ctx, ann)

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		req.FailNow("session did not settle after the forced fail")
	}
	req.Equal(uint64(1), engine.metrics.SessionsFailed.Load())
}

func TestHandleMessage_PendingUserNoiseIsDeleted(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "pending"), "true")

	bot.EXPECT().Delete(gomock.Any(), testChatID, 42).Return(true).Times(1)

	engine.HandleMessage(ctx, message(42, 7, "let me in"))
	req.True(store.has(engine.userKey(7, "pending")))
	req.Equal(uint64(1), engine.metrics.UpdatesSeen.Load())
}

func TestHandleMessage_DisabledChatIgnoresJoins(t *testing.T) {
	req := require.New(t)
	engine, store, _ := newTestEngine(t)
	ctx := context.Background()

	m := message(5, 8, "")
	m.Joined = []domain.User{{ID: 7, FirstName: "Ann"}}
	engine.HandleMessage(ctx, m)

	req.Zero(engine.metrics.SessionsStarted.Load())
	req.False(store.has(engine.userKey(7, "pending")))
}

func TestHandleMessage_SelfJoinResetsEnabled(t *testing.T) {
	req := require.New(t)
	engine, store, _ := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.key("enabled"), "true")
	store.put(engine.userKey(testBotID, "role"), "admin")

	m := message(5, 8, "")
	m.Joined = []domain.User{{ID: testBotID, FirstName: "Gate"}}
	engine.HandleMessage(ctx, m)

	req.False(store.has(engine.key("enabled")))
	req.False(store.has(engine.userKey(testBotID, "role")))
}
