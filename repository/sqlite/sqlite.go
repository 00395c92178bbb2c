// Package sqlite keeps player states in a SQLite database file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var _ repository.State = new(Repo)

const schema = `CREATE TABLE IF NOT EXISTS wordle_state (
	profile TEXT PRIMARY KEY,
	data    TEXT NOT NULL
);`

type Repo struct {
	db *sql.DB
}

// Open opens (and creates if missing) the database file at path.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	return db, nil
}

// New creates the state table if it does not exist yet.
func New(ctx context.Context, db *sql.DB) (*Repo, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("create wordle_state: %w", err)
	}
	return &Repo{db: db}, nil
}

// Load implements repository.State.
func (r *Repo) Load(ctx context.Context, profile string) (stats.State, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM wordle_state WHERE profile = ?`, profile).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return stats.State{}, nil
	}
	if err != nil {
		return stats.State{}, err
	}
	var s stats.State
	if err = json.Unmarshal([]byte(data), &s); err != nil {
		return stats.State{}, err
	}
	return s, nil
}

// Save implements repository.State.
func (r *Repo) Save(ctx context.Context, profile string, s stats.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO wordle_state (profile, data) VALUES (?, ?)
		ON CONFLICT(profile) DO UPDATE SET data = excluded.data`,
		profile, string(b),
	)
	return err
}
