package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/repository/memory"
	"github.com/kodekulture/wordle/service"
)

var acceptableWords = []string{"CRANE", "SLATE", "SPEED", "SPELL", "STEED", "WORLD"}

type fixedGen string

func (f fixedGen) Generate(int) string {
	return string(f)
}

func newTestService(t *testing.T, gen word.Generator) *service.Service {
	t.Helper()
	acceptable, err := word.NewList(acceptableWords)
	require.NoError(t, err)
	final, err := word.NewList([]string{"CRANE", "SPEED", "WORLD"})
	require.NoError(t, err)
	return service.New(service.Lists{Acceptable: acceptable, Final: final}, gen, memory.New())
}

func run(t *testing.T, opts Options, input string) []string {
	t.Helper()
	var out bytes.Buffer
	c := New(newTestService(t, fixedGen("CRANE")), opts, strings.NewReader(input), &out)
	require.NoError(t, c.Run(context.Background()))
	if out.Len() == 0 {
		return nil
	}
	return strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
}

func TestRun(t *testing.T) {
	testcases := []struct {
		name  string
		opts  Options
		input string
		want  []string
	}{
		{
			name:  "fixed word with stats",
			opts:  Options{Word: "SPEED", Stats: true},
			input: "CRANE\nSPEE\nspeed\nY\nSPEED\n",
			want: []string{
				"RRRRY RXRXYXXXXXXXXRXXXRXXXXXXXX",
				"INVALID",
				"GGGGG RXRGGXXXXXXXXRXGXRGXXXXXXX",
				"CORRECT 2",
				"1 0 2.00",
				"CRANE 1 SPEED 1",
				"GGGGG XXXGGXXXXXXXXXXGXXGXXXXXXX",
				"CORRECT 1",
				"2 0 1.50",
				"SPEED 2 CRANE 1",
			},
		},
		{
			name:  "stops without Y",
			opts:  Options{Word: "SPEED"},
			input: "SPEED\nN\nSPEED\n",
			want:  []string{"GGGGG XXXGGXXXXXXXXXXGXXGXXXXXXX", "CORRECT 1"},
		},
		{
			name:  "random answer",
			opts:  Options{Random: true},
			input: "CRANE\n",
			want:  []string{"GGGGG GXGXGXXXXXXXXGXXXGXXXXXXXX", "CORRECT 1"},
		},
		{
			name:  "empty input",
			opts:  Options{Word: "SPEED"},
			input: "",
			want:  nil,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.opts, tt.input))
		})
	}
}

func TestRun_ChosenAnswer(t *testing.T) {
	input := "SLATE\nWORLD\nHINT\nCRANE\nSLATE\nSPEED\nSPELL\nSTEED\nCRANE\nN\n"
	lines := run(t, Options{}, input)

	require.Len(t, lines, 9)
	assert.Equal(t, "INVALID", lines[0], "SLATE is not a final word")
	assert.Contains(t, acceptableWords, lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "RYRRR "), lines[2])
	assert.Equal(t, "FAILED WORLD", lines[8])
}

func TestRun_TTY(t *testing.T) {
	var out bytes.Buffer
	c := New(newTestService(t, fixedGen("CRANE")), Options{Word: "SPEED", TTY: true}, strings.NewReader("ana\nSPEED\n"), &out)
	require.NoError(t, c.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Welcome, ana!")
	assert.Contains(t, s, "You won in 1 guesses!")
	assert.Contains(t, s, "Goodbye!")
	assert.NotContains(t, s, "CORRECT")
}

func TestStatusOf(t *testing.T) {
	for _, s := range []word.LetterStatus{word.Unknown, word.Incorrect, word.Exists, word.Correct} {
		assert.Equal(t, s, statusOf(s.Char()))
	}
}
