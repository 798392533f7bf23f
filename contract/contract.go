//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"time"

	"sticker-gate/domain"
)

// IStore is the durable key-value surface backing chat configuration,
// pending flags and the role cache. A zero ttl means no expiry. Get
// returns errors.ErrKeyNotFound for absent keys.
type IStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
	Close() error
}

// IMessenger is the chat-platform surface. Every operation is fallible;
// failures are logged by the adapter and degrade to neutral return values
// (0, false, zero Message) instead of propagating. The one exception is
// Member: callers need to distinguish "user absent" (nil, nil) from a
// transient lookup failure (nil, err) to decide whether to retry.
type IMessenger interface {
	Me() domain.User
	Send(ctx context.Context, chat int64, html string, replyTo int) int
	SendSticker(ctx context.Context, chat int64, fileID string) (domain.Message, bool)
	Delete(ctx context.Context, chat int64, msg int) bool
	Restrict(ctx context.Context, chat int64, user int64) bool
	Ban(ctx context.Context, chat int64, user int64) bool
	Unban(ctx context.Context, chat int64, user int64) bool
	Member(ctx context.Context, chat int64, user int64) (*domain.Member, error)
	Leave(ctx context.Context, chat int64) bool
}

// ITranslator resolves locale-keyed templates: locale x key x args -> string.
type ITranslator interface {
	Format(lang string, key string, args ...any) string
	AllLangs() string
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// lifecycle events, avoiding the need for manual naming in the Worker
// interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
