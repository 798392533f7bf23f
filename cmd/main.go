package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/redis/go-redis/v9"

	"sticker-gate/contract"
	apperrors "sticker-gate/errors"
	"sticker-gate/group"
	"sticker-gate/i18n"
	"sticker-gate/observability"
	"sticker-gate/repositories"
	"sticker-gate/runtime/workers"
	"sticker-gate/telegram"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components and centralizes error reporting, so every
// defer (store cleanup included) executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Durable store
	store, err := openStore(ctx, config, log)
	if err != nil {
		return fmt.Errorf("store opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing store...")
		_ = store.Close()
	}()

	// 4. Telegram client
	client, err := telegram.New(config.TelegramToken, log)
	if err != nil {
		return fmt.Errorf("telegram connection failed: %w", err)
	}
	log.Info("Connected", "bot", client.Me().Username)

	// 5. Per-chat engines & workers
	metrics := observability.NewMetrics()
	registry := group.NewRegistry(group.Deps{
		Store:      store,
		Messenger:  client,
		Translator: i18n.New(log),
		Metrics:    metrics,
		Log:        log,
	})

	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewPollerWorker(client, registry, log),
		workers.NewReporterWorker(metrics, registry, config.ReportInterval, log),
	)
	sup.Run(ctx)

	log.Info("Program stopped cleanly")
	return nil
}

func openStore(ctx context.Context, config Config, log *slog.Logger) (contract.IStore, error) {
	switch config.StoreBackend {
	case "badger":
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
			WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, err
		}
		return repositories.NewBadgerStore(db, log), nil
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		store := repositories.NewRedisStore(client, log)
		if err := store.Ping(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownBackend, config.StoreBackend)
	}
}
