package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var _ repository.State = new(StateRepo)

const schema = `CREATE TABLE IF NOT EXISTS wordle_state (
	profile TEXT PRIMARY KEY,
	data    JSONB NOT NULL
)`

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type StateRepo struct {
	db DBTX
}

func NewStateRepo(db DBTX) *StateRepo {
	return &StateRepo{db: db}
}

// Connect opens a pool and makes sure the database answers.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Join(err, errors.New("failed to ping database"))
	}
	return pool, nil
}

// Migrate creates the state table if it does not exist yet.
func (r *StateRepo) Migrate(ctx context.Context) error {
	_, err := r.db.Exec(ctx, schema)
	return err
}

// Load implements repository.State.
func (r *StateRepo) Load(ctx context.Context, profile string) (stats.State, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM wordle_state WHERE profile = $1`, profile).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return stats.State{}, nil
	}
	if err != nil {
		return stats.State{}, err
	}
	var s stats.State
	if err = json.Unmarshal(data, &s); err != nil {
		return stats.State{}, err
	}
	return s, nil
}

// Save implements repository.State.
func (r *StateRepo) Save(ctx context.Context, profile string, s stats.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO wordle_state (profile, data) VALUES ($1, $2)
		ON CONFLICT (profile) DO UPDATE SET data = EXCLUDED.data`,
		profile, string(b),
	)
	return err
}
