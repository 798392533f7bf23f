package group

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"sticker-gate/domain"
	apperrors "sticker-gate/errors"
	"sticker-gate/i18n"
	"sticker-gate/mocks"
	"sticker-gate/observability"
)

const (
	testChatID = int64(100)
	testBotID  = int64(999)
)

// fakeStore is an in-memory IStore. The TTL is ignored: expiry behavior is
// covered by the real store tests, engine behavior never depends on it.
type fakeStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.data[key]
	if !ok {
		return "", apperrors.ErrKeyNotFound
	}
	return value, nil
}

func (s *fakeStore) Set(_ context.Context, key string, value string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *fakeStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *fakeStore) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok, nil
}

func (s *fakeStore) Ping(context.Context) error { return nil }
func (s *fakeStore) Close() error               { return nil }

func (s *fakeStore) put(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *fakeStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data[key]
	return ok
}

func (s *fakeStore) value(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key]
}

func newTestEngine(t *testing.T) (*Engine, *fakeStore, *mocks.MockIMessenger) {
	ctrl := gomock.NewController(t)
	store := newFakeStore()
	bot := mocks.NewMockIMessenger(ctrl)
	bot.EXPECT().Me().
		Return(domain.User{ID: testBotID, FirstName: "Gate", Username: "StickerGateBot"}).
		AnyTimes()
	engine := NewEngine(testChatID, Deps{
		Store:      store,
		Messenger:  bot,
		Translator: i18n.New(slog.Default()),
		Metrics:    observability.NewMetrics(),
		Log:        slog.Default(),
	})
	return engine, store, bot
}

func message(id int, sender int64, text string) domain.Message {
	return domain.Message{
		ID:     id,
		ChatID: testChatID,
		Sender: domain.User{ID: sender, FirstName: "Ann"},
		Text:   text,
		Sent:   time.Now(),
	}
}

// waitUntil polls cond, failing the test when it never holds.
func waitUntil(req *require.Assertions, cond func() bool) {
	for i := 0; i < 200; i++ {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	req.FailNow("condition never satisfied")
}
