package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	answers, err := NewList([]string{"CRANE", "SLATE", "WORLD", "ABBEY", "ZESTY"})
	require.NoError(t, err)

	first := NewSequence(answers, DefaultSeed, DefaultDay)
	second := NewSequence(answers, DefaultSeed, DefaultDay)
	seen := make(map[string]bool)
	for i := 0; i < answers.Len(); i++ {
		w := first.Generate(Length)
		assert.Equal(t, w, second.Generate(Length), "same seed gives the same order")
		seen[w] = true
	}
	assert.Len(t, seen, answers.Len(), "every answer is handed out once per cycle")
	assert.Equal(t, 1, first.Day(), "cursor wraps around")
}

func TestSequence_Day(t *testing.T) {
	answers, err := NewList([]string{"CRANE", "SLATE", "WORLD", "ABBEY", "ZESTY"})
	require.NoError(t, err)

	fromStart := NewSequence(answers, 42, 1)
	fromThird := NewSequence(answers, 42, 3)
	fromStart.Generate(Length)
	fromStart.Generate(Length)
	assert.Equal(t, 3, fromThird.Day())
	assert.Equal(t, fromStart.Generate(Length), fromThird.Generate(Length))
	assert.Equal(t, 4, fromThird.Day())
}
