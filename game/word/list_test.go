package word

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewList(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		wantErr error
		sorted  []string
	}{
		{name: "empty", words: nil, wantErr: ErrEmptyList},
		{name: "too short", words: []string{"CRANE", "CAT"}, wantErr: ErrInvalidWord},
		{name: "not latin", words: []string{"CRAN3"}, wantErr: ErrInvalidWord},
		{name: "uppercased and sorted", words: []string{"slate", "Crane", "SLATE"}, sorted: []string{"CRANE", "SLATE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewList(tt.words)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.sorted, l.Sorted())
			assert.Equal(t, len(tt.words), l.Len())
		})
	}
}

func TestList_Contains(t *testing.T) {
	l, err := NewList([]string{"WORLD", "CRANE", "ABBEY", "ZESTY"})
	require.NoError(t, err)
	for _, w := range []string{"WORLD", "CRANE", "ABBEY", "ZESTY"} {
		assert.True(t, l.Contains(w), w)
	}
	for _, w := range []string{"world", "CRANES", "", "AAAAA"} {
		assert.False(t, l.Contains(w), w)
	}
	assert.Equal(t, []string{"WORLD", "CRANE", "ABBEY", "ZESTY"}, l.Words(), "order is kept")
}

func TestReadList(t *testing.T) {
	l, err := ReadList(strings.NewReader("crane\n slate\tWORLD  \n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"CRANE", "SLATE", "WORLD"}, l.Words())

	_, err = ReadList(strings.NewReader("  \n"))
	assert.ErrorIs(t, err, ErrEmptyList)
}

func TestLoadList(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("crane\nslate\n"), 0o600))
	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("crane\nslates\n"), 0o600))

	l, err := LoadList(good)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	_, err = LoadList(bad)
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = LoadList(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestList_IsSubsetOf(t *testing.T) {
	small, _ := NewList([]string{"CRANE"})
	big, _ := NewList([]string{"CRANE", "SLATE"})
	assert.True(t, small.IsSubsetOf(big))
	assert.False(t, big.IsSubsetOf(small))
}

func TestBuiltin(t *testing.T) {
	acceptable, final := Builtin()
	assert.Greater(t, final.Len(), 100)
	assert.True(t, final.IsSubsetOf(acceptable), "final words should be acceptable")
}
