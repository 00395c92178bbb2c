package bot

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/repository/memory"
	"github.com/kodekulture/wordle/service"
)

type fixedGen string

func (f fixedGen) Generate(int) string {
	return string(f)
}

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	acceptable, err := word.NewList([]string{"CRANE", "SLATE", "SPEED", "SPELL", "STEED", "WORLD"})
	require.NoError(t, err)
	final, err := word.NewList([]string{"CRANE", "SPEED", "WORLD"})
	require.NoError(t, err)
	return newBot(service.New(service.Lists{Acceptable: acceptable, Final: final}, fixedGen("SPEED"), memory.New()))
}

func TestBot_NoGame(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	assert.Equal(t, msgNoGame, b.guess(ctx, 1, "CRANE"))
	assert.Equal(t, msgNoGame, b.hint(ctx, 1, "/hint"))
	assert.Equal(t, msgNoGame, b.hard(ctx, 1, "/hard"))
	assert.Equal(t, msgStart, b.start(ctx, 1, "/start"))
	assert.True(t, strings.HasPrefix(b.guess(ctx, 1, "/nope"), "Unknown command."))
}

func TestBot_Game(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()
	const chat = 42

	assert.Contains(t, b.play(ctx, chat, "/play"), "New game started")
	first, ok := b.session(chat)
	require.True(t, ok)

	got := b.guess(ctx, chat, "crane")
	assert.Equal(t, "⬛⬛⬛⬛🟨 CRANE\n\n5 guesses left.", got)

	assert.Equal(t, game.ErrUnknownWord.Error(), b.guess(ctx, chat, "QQQQQ"))
	assert.Equal(t, game.ErrUnexpectedWordLength.Error(), b.guess(ctx, chat, "SPEE"))

	assert.Equal(t, "Difficult mode is on.", b.hard(ctx, chat, "/hard"))
	assert.Equal(t, game.ErrHintUnused.Error(), b.guess(ctx, chat, "WORLD"))
	assert.Contains(t, []string{"Try SPEED", "Try SPELL", "Try STEED"}, b.hint(ctx, chat, "/hint"))

	got = b.guess(ctx, chat, "SPEED")
	assert.True(t, strings.HasSuffix(got, "You won in 2 guesses! /play again?"), got)
	assert.Contains(t, b.guess(ctx, chat, "SPEED"), "The game has ended")

	stats := b.stats(ctx, chat, "/stats")
	assert.Contains(t, stats, "Wins: 1 Fails: 0")
	assert.Contains(t, stats, "Average tries of games won: 2.00")
	assert.Contains(t, stats, "CRANE: used 1 times")

	// a new game keeps difficult mode and replaces the old session
	assert.Contains(t, b.play(ctx, chat, "/play"), "Difficult mode is on.")
	second, ok := b.session(chat)
	require.True(t, ok)
	assert.NotEqual(t, first, second)
	_, err := b.srv.Session(first)
	assert.ErrorIs(t, err, service.ErrNoSession)
}

func TestBot_ChatsAreSeparate(t *testing.T) {
	b := newTestBot(t)
	ctx := context.Background()

	b.play(ctx, 1, "/play")
	b.guess(ctx, 1, "SPEED")

	assert.Contains(t, b.stats(ctx, 1, "/stats"), "Wins: 1")
	assert.Contains(t, b.stats(ctx, 2, "/stats"), "Wins: 0")
	assert.Equal(t, msgNoGame, b.guess(ctx, 2, "SPEED"))
}

func TestSquares(t *testing.T) {
	assert.Equal(t, "🟩🟨⬛⬛", squares("GYRX"))
	assert.Equal(t, "", squares(""))
}
