// Package repotest holds the checks every state backend has to pass.
package repotest

import (
	"context"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/stats"
)

type Backend interface {
	Load(ctx context.Context, profile string) (stats.State, error)
	Save(ctx context.Context, profile string, s stats.State) error
}

// RandomState returns a state with a few random games.
func RandomState() stats.State {
	var s stats.State
	for i := gofakeit.Number(1, 5); i > 0; i-- {
		guesses := make([]string, gofakeit.Number(1, game.MaxGuesses))
		for j := range guesses {
			guesses[j] = randomWord()
		}
		s.Record(randomWord(), guesses)
	}
	return s
}

func randomWord() string {
	return strings.ToUpper(gofakeit.LetterN(word.Length))
}

// TestState saves and loads states of a single profile.
func TestState(t *testing.T, r Backend) {
	ctx := context.Background()
	profile := gofakeit.Username() + "-" + gofakeit.UUID()

	t.Run("missing profile", func(t *testing.T) {
		got, err := r.Load(ctx, profile)
		require.NoError(t, err)
		assert.Zero(t, got.TotalRounds)
		assert.Empty(t, got.Games)
	})

	t.Run("save and load", func(t *testing.T) {
		want := RandomState()
		require.NoError(t, r.Save(ctx, profile, want))
		got, err := r.Load(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, want.TotalRounds, got.TotalRounds)
		assert.Equal(t, want.Games, got.Games)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, r.Save(ctx, profile, RandomState()))
		want := RandomState()
		require.NoError(t, r.Save(ctx, profile, want))
		got, err := r.Load(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, want.Games, got.Games)
	})

	t.Run("loaded state is a copy", func(t *testing.T) {
		want := RandomState()
		require.NoError(t, r.Save(ctx, profile, want))
		got, err := r.Load(ctx, profile)
		require.NoError(t, err)
		got.Games[0].Answer = "XXXXX"
		got.Record("YYYYY", []string{"YYYYY"})

		again, err := r.Load(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, want.Games, again.Games)
	})
}

// TestProfiles checks that profiles do not share a state.
func TestProfiles(t *testing.T, r Backend) {
	ctx := context.Background()
	first, second := gofakeit.UUID(), gofakeit.UUID()

	s1, s2 := RandomState(), RandomState()
	require.NoError(t, r.Save(ctx, first, s1))
	require.NoError(t, r.Save(ctx, second, s2))

	got, err := r.Load(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, s1.Games, got.Games)

	got, err = r.Load(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, s2.Games, got.Games)
}
