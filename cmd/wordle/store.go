package main

import (
	"context"
	"fmt"

	zlog "github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/internal/config"
	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/repository/badgr"
	"github.com/kodekulture/wordle/repository/file"
	"github.com/kodekulture/wordle/repository/memory"
	"github.com/kodekulture/wordle/repository/postgres"
	"github.com/kodekulture/wordle/repository/redis"
	"github.com/kodekulture/wordle/repository/sqlite"
)

// defaultURLs are used when --store-url is empty.
var defaultURLs = map[string]string{
	"file":   "state.json",
	"badger": "wordle-badger",
	"redis":  "redis://localhost:6379/0",
	"sqlite": "wordle.db",
}

// openStore opens the backend named by --store. The returned func releases it.
func openStore(ctx context.Context, cfg *config.Config) (repository.State, func(), error) {
	url := cfg.StoreURL
	if url == "" {
		url = defaultURLs[cfg.Store]
	}
	nop := func() {}

	switch cfg.Store {
	case "memory":
		return memory.New(), nop, nil
	case "file":
		return file.New(url), nop, nil
	case "badger":
		db, err := badgr.Open(url)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open badger at %s: %w", url, err)
		}
		return badgr.New(db), closer("badger", db.Close), nil
	case "redis":
		cl, err := redis.NewClient(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		return redis.NewStateRepository(cl), closer("redis", cl.Close), nil
	case "postgres":
		if url == "" {
			return nil, nil, fmt.Errorf("the postgres store needs --store-url")
		}
		pool, err := postgres.Connect(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		repo := postgres.NewStateRepo(pool)
		if err = repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	case "sqlite":
		db, err := sqlite.Open(url)
		if err != nil {
			return nil, nil, err
		}
		repo, err := sqlite.New(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, closer("sqlite", db.Close), nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", config.ErrUnknownStore, cfg.Store)
	}
}

// openBackup opens the badger database keeping server sessions. The badger
// store is reused when it lives in the same directory.
func openBackup(cfg *config.Config, store repository.State) (repository.HubBackup, func(), error) {
	if repo, ok := store.(*badgr.Repo); ok && cfg.StoreURL == cfg.Backup {
		return repo, func() {}, nil
	}
	db, err := badgr.Open(cfg.Backup)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open backup at %s: %w", cfg.Backup, err)
	}
	return badgr.New(db), closer("backup", db.Close), nil
}

func closer(name string, fn func() error) func() {
	return func() {
		if err := fn(); err != nil {
			zlog.Err(err).Str("store", name).Msg("failed to close")
		}
	}
}
