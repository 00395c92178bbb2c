package badgr

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/repository/repotest"
)

func TestRepo_State(t *testing.T) {
	r := New(testDB)
	repotest.TestState(t, r)
	repotest.TestProfiles(t, r)
}

func TestRepo_Hub(t *testing.T) {
	r := New(testDB)
	ctx := context.Background()

	profile := gofakeit.Username()
	state := repotest.RandomState()
	require.NoError(t, r.Save(ctx, profile, state))

	tests := []struct {
		name     string
		sessions []repository.Session
	}{
		{name: "empty", sessions: nil},
		{name: "one", sessions: randomSessions(1)},
		{name: "many", sessions: randomSessions(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, r.DumpHub(ctx, tt.sessions))
			got, err := r.LoadHub(ctx)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.sessions, got)

			require.NoError(t, r.DropHub(ctx))
			got, err = r.LoadHub(ctx)
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}

	// dropping the hub keeps player states
	got, err := r.Load(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, state.Games, got.Games)
}

func randomSessions(n int) []repository.Session {
	sessions := make([]repository.Session, n)
	for i := range sessions {
		g := repotest.RandomState().Games[0]
		sessions[i] = repository.Session{
			ID:      uuid.New(),
			Profile: gofakeit.Username(),
			Game: game.Snapshot{
				Answer:    g.Answer,
				Difficult: gofakeit.Bool(),
				Guesses:   g.Guesses,
			},
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
	}
	return sessions
}
