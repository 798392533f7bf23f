package group

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sticker-gate/domain"
)

func TestParseCommand(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		text string
		cmd  string
		arg  string
		ok   bool
	}{
		{"hello there", "", "", false},
		{"/", "", "", false},
		{"/ping", "ping", "", true},
		{"/PING", "ping", "", true},
		{"/timeout 30", "timeout", "30", true},
		{"/timeout@StickerGateBot 30", "timeout", "30", true},
		{"/timeout@stickergatebot 30", "timeout", "30", true},
		{"/timeout@SomeOtherBot 30", "", "", false},
		{"/onjoin hi $u, prove you are human", "onjoin", "hi $u, prove you are human", true},
	}
	for _, tt := range tests {
		cmd, arg, ok := parseCommand(tt.text, "StickerGateBot")
		req.Equal(tt.ok, ok, tt.text)
		req.Equal(tt.cmd, cmd, tt.text)
		req.Equal(tt.arg, arg, tt.text)
	}
}

func TestCommand_NonAdminCannotMutate(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "member")
	store.put(engine.key("enabled"), "true")

	// One rejection reply per attempt, nothing else.
	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		Times(3)

	req.True(engine.handleCommand(ctx, message(1, 7, "/disable")))
	req.True(engine.handleCommand(ctx, message(2, 7, "/timeout 5")))
	req.True(engine.handleCommand(ctx, message(3, 7, "/action ban")))

	req.True(store.has(engine.key("enabled")))
	req.False(store.has(engine.key("timeout")))
	req.False(store.has(engine.key("action")))
}

func TestCommand_TimeoutValidation(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "admin")

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		AnyTimes()

	engine.handleCommand(ctx, message(1, 7, "/timeout 0"))
	req.False(store.has(engine.key("timeout")))

	engine.handleCommand(ctx, message(2, 7, "/timeout -5"))
	req.False(store.has(engine.key("timeout")))

	engine.handleCommand(ctx, message(3, 7, "/timeout 2147483648"))
	req.False(store.has(engine.key("timeout")))

	engine.handleCommand(ctx, message(4, 7, "/timeout banana"))
	req.False(store.has(engine.key("timeout")))

	engine.handleCommand(ctx, message(5, 7, "/timeout 30"))
	req.Equal("30", store.value(engine.key("timeout")))
}

func TestCommand_VerboseAndQuietExclude(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "admin")

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		AnyTimes()

	engine.handleCommand(ctx, message(1, 7, "/verbose on"))
	req.True(store.has(engine.key("verbose")))

	engine.handleCommand(ctx, message(2, 7, "/quiet on"))
	req.True(store.has(engine.key("quiet")))
	req.False(store.has(engine.key("verbose")))

	engine.handleCommand(ctx, message(3, 7, "/verbose on"))
	req.True(store.has(engine.key("verbose")))
	req.False(store.has(engine.key("quiet")))
}

func TestCommand_EnableRechecksOwnRights(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "admin")
	// A stale cache entry claims we are admin; /enable must not trust it.
	store.put(engine.userKey(testBotID, "role"), "admin")

	bot.EXPECT().Member(gomock.Any(), testChatID, testBotID).
		Return(&domain.Member{Status: domain.MemberMember}, nil).
		Times(1)
	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		Times(1)

	engine.handleCommand(ctx, message(1, 7, "/enable"))
	req.False(store.has(engine.key("enabled")))
}

func TestCommand_EnableWithRights(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "admin")

	bot.EXPECT().Member(gomock.Any(), testChatID, testBotID).
		Return(&domain.Member{Status: domain.MemberAdministrator, CanRestrict: true}, nil).
		Times(1)
	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		Times(1)

	engine.handleCommand(ctx, message(1, 7, "/enable"))
	req.True(store.has(engine.key("enabled")))
}

func TestCommand_HelpListsEveryCommand(t *testing.T) {
	req := require.New(t)
	engine, _, bot := newTestEngine(t)

	var sent string
	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, html string, _ int) int {
			sent = html
			return 1
		}).
		Times(1)

	engine.handleCommand(context.Background(), message(1, 7, "/help"))
	for _, cmd := range []string{"/ping", "/enable", "/disable", "/timeout", "/onjoin", "/reverify", "/pass", "/fail"} {
		req.Contains(sent, cmd)
	}
	req.Contains(sent, "$u")
}

func TestCommand_RefreshDropsCachedRole(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "member")

	bot.EXPECT().Delete(gomock.Any(), testChatID, 1).Return(true).Times(1)

	engine.handleCommand(ctx, message(1, 7, "/refresh"))
	req.False(store.has(engine.userKey(7, "role")))
}

func TestCommand_RefreshTargetsRepliedUser(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(8, "role"), "admin")

	bot.EXPECT().Delete(gomock.Any(), testChatID, 2).Return(true).Times(1)

	m := message(2, 7, "/refresh")
	target := message(1, 8, "hello")
	m.ReplyTo = &target
	engine.handleCommand(ctx, m)
	req.False(store.has(engine.userKey(8, "role")))
}

func TestCommand_ManualPassNeedsReply(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()
	store.put(engine.userKey(7, "role"), "admin")

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		Times(1)

	req.True(engine.handleCommand(ctx, message(1, 7, "/pass")))
}

func TestCommand_GroupOnlyInPrivateChat(t *testing.T) {
	req := require.New(t)
	engine, store, bot := newTestEngine(t)
	ctx := context.Background()

	bot.EXPECT().Send(gomock.Any(), testChatID, gomock.Any(), gomock.Any()).
		Return(1).
		Times(1)

	m := message(1, 7, "/enable")
	m.Private = true
	req.True(engine.handleCommand(ctx, m))
	req.False(store.has(engine.key("enabled")))
}
