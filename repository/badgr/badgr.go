// Package badgr is an adapter for the badgerDB
package badgr

import (
	"context"
	"encoding/json"

	"github.com/dgraph-io/badger"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var (
	_ repository.State     = new(Repo)
	_ repository.HubBackup = new(Repo)
)

type Repo struct {
	db *badger.DB
}

func New(db *badger.DB) *Repo {
	return &Repo{db: db}
}

// Open opens the database in dir, creating it if needed.
func Open(dir string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(dir))
}

// Load implements repository.State.
func (r *Repo) Load(_ context.Context, profile string) (stats.State, error) {
	var s stats.State
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(repository.StatePrefix + profile))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &s)
		})
	})
	if err != nil {
		return stats.State{}, err
	}
	return s, nil
}

// Save implements repository.State.
func (r *Repo) Save(_ context.Context, profile string, s stats.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(repository.StatePrefix+profile), b))
	})
}

// DumpHub implements repository.HubBackup.
func (r *Repo) DumpHub(_ context.Context, sessions []repository.Session) error {
	for _, sess := range sessions {
		err := r.db.Update(func(txn *badger.Txn) error {
			b, err := json.Marshal(sess)
			if err != nil {
				return err
			}
			e := badger.NewEntry([]byte(repository.SessionPrefix+sess.ID.String()), b)
			return txn.SetEntry(e)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// LoadHub implements repository.HubBackup.
func (r *Repo) LoadHub(_ context.Context) ([]repository.Session, error) {
	var sessions []repository.Session
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(repository.SessionPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var sess repository.Session
			err := it.Item().Value(func(v []byte) error {
				return json.Unmarshal(v, &sess)
			})
			if err != nil {
				return err
			}
			sessions = append(sessions, sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DropHub implements repository.HubBackup. Player states are kept.
func (r *Repo) DropHub(_ context.Context) error {
	var keys [][]byte
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(repository.SessionPrefix)
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		for _, k := range keys {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}
