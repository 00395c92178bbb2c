package postgres

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/repository/repotest"
)

// fakeDB stores what Save writes and hands it back to Load.
type fakeDB struct {
	rows map[string][]byte
	err  error
}

func (f *fakeDB) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	if len(args) == 2 {
		f.rows[args[0].(string)] = []byte(args[1].(string))
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	if f.err != nil {
		return fakeRow{err: f.err}
	}
	data, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{data: data}
}

type fakeRow struct {
	data []byte
	err  error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*[]byte) = append([]byte(nil), r.data...)
	return nil
}

func TestStateRepo(t *testing.T) {
	repotest.TestState(t, NewStateRepo(&fakeDB{rows: make(map[string][]byte)}))
	repotest.TestProfiles(t, NewStateRepo(&fakeDB{rows: make(map[string][]byte)}))
}

func TestStateRepo_Error(t *testing.T) {
	dbErr := errors.New("connection refused")
	r := NewStateRepo(&fakeDB{err: dbErr})
	ctx := context.Background()

	_, err := r.Load(ctx, "player")
	assert.ErrorIs(t, err, dbErr)
	assert.ErrorIs(t, r.Save(ctx, "player", repotest.RandomState()), dbErr)
}

func TestStateRepo_Postgres(t *testing.T) {
	url := os.Getenv("WORDLE_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("WORDLE_TEST_POSTGRES_URL is not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	r := NewStateRepo(pool)
	require.NoError(t, r.Migrate(ctx))
	repotest.TestState(t, r)
	repotest.TestProfiles(t, r)
}
