package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/repository/repotest"
	"github.com/kodekulture/wordle/stats"
)

func TestRepo(t *testing.T) {
	repotest.TestState(t, New(filepath.Join(t.TempDir(), "state.json")))
}

func TestRepo_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	content := `{"total_rounds": 2, "games": [
		{"answer": "CRANE", "guesses": ["SLATE", "CRANE"]},
		{"answer": "SPEED", "guesses": ["CRANE"]}
	]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r := New(path)
	ctx := context.Background()
	s, err := r.Load(ctx, "ignored")
	require.NoError(t, err)
	assert.Equal(t, 2, s.TotalRounds)
	assert.Equal(t, stats.Summary{
		Wins:         1,
		Fails:        1,
		AverageTries: 2,
		Top:          []stats.WordCount{{Word: "CRANE", Count: 2}, {Word: "SLATE", Count: 1}},
	}, s.Summary())

	s.Record("WORLD", []string{"WORLD"})
	require.NoError(t, r.Save(ctx, "other", s))

	s, err = New(path).Load(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalRounds)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files are left")
}

func TestRepo_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := New(path).Load(context.Background(), "")
	assert.Error(t, err)
}
