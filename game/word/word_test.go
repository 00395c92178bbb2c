package word

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterStateEnums(t *testing.T) {
	testCases := []struct {
		letterStatus LetterStatus
		expected     int
		char         byte
		errorMessage string
	}{
		{Correct, 3, 'G', "Correct should be 3"},
		{Incorrect, 1, 'R', "Incorrect should be 1"},
		{Exists, 2, 'Y', "Exists should be 2"},
		{Unknown, 0, 'X', "Unknown should be 0"},
	}

	for _, tt := range testCases {
		t.Run(tt.errorMessage, func(t *testing.T) {
			if int(tt.letterStatus) != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, tt.letterStatus)
			}
			assert.Equal(t, tt.char, tt.letterStatus.Char())
		})
	}
}

func TestLetterStatus_Max(t *testing.T) {
	assert.Equal(t, Correct, Correct.Max(Exists))
	assert.Equal(t, Correct, Exists.Max(Correct))
	assert.Equal(t, Incorrect, Unknown.Max(Incorrect))
	assert.Equal(t, Exists, Exists.Max(Unknown))
}

func TestWord_Check(t *testing.T) {
	testCases := []struct {
		word        string
		correctWord string
		expected    LetterStatuses
		desc        string
	}{
		{"WEIRD", "WORLD", LetterStatuses{Correct, Incorrect, Incorrect, Exists, Correct}, "contains WRD"},
		{"SAVED", "WORLD", LetterStatuses{Incorrect, Incorrect, Incorrect, Incorrect, Correct}, "contains just D"},
		{"SEIZE", "WORLD", LetterStatuses{Incorrect, Incorrect, Incorrect, Incorrect, Incorrect}, "contains nothing"},
		{"SEGMENT", "WORLD", LetterStatuses{Incorrect, Incorrect, Incorrect, Incorrect, Incorrect, Incorrect, Incorrect}, "longer than word to be guessed"},
		{"SEX", "WORLD", LetterStatuses{Incorrect, Incorrect, Incorrect}, "shorter than word to be guessed"},
		{"LOROC", "WORLD", LetterStatuses{Exists, Correct, Correct, Incorrect, Incorrect}, "One correct 'O' and One wrong 'O'"},
		{"ALELE", "EVENT", LetterStatuses{Incorrect, Incorrect, Correct, Incorrect, Exists}, "One correct E and One wrong E"},
		{"EVENT", "EVENT", LetterStatuses{Correct, Correct, Correct, Correct, Correct}, "Same word"},
		{"RITES", "SITES", LetterStatuses{Incorrect, Correct, Correct, Correct, Correct}, "Wrong letter first that exists later"},
		{"WEEEE", "EEEEE", LetterStatuses{Incorrect, Correct, Correct, Correct, Correct}, "All the letters exist but the count is wrong"},
		{"ERASE", "SPEED", LetterStatuses{Exists, Incorrect, Incorrect, Exists, Exists}, "two E both yellow, R and A absent"},
		{"EERIE", "SPEED", LetterStatuses{Exists, Exists, Incorrect, Incorrect, Incorrect}, "only two of three E marked"},
		{"EMBER", "THREE", LetterStatuses{Exists, Incorrect, Incorrect, Correct, Exists}, "one E in place, one E elsewhere"},
		{"LLAMA", "HELLO", LetterStatuses{Exists, Exists, Incorrect, Incorrect, Incorrect}, "double L both present"},
		{"HOTEL", "HELLO", LetterStatuses{Correct, Exists, Incorrect, Exists, Exists}, "green H then yellows"},
	}
	for _, tt := range testCases {
		t.Run(tt.desc, func(t *testing.T) {
			// given
			word := New(tt.word)
			correctWord := New(tt.correctWord)
			//when
			result := word.Check(correctWord)
			// then
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
			assert.Equal(t, tt.expected, word.Stats)
		})
	}
}

func TestWord_Correct(t *testing.T) {
	w := New("crane")
	assert.False(t, w.Correct(), "unchecked word is not correct")
	w.Check(New("CRANE"))
	assert.True(t, w.Correct())
	assert.Equal(t, "GGGGG", w.Stats.String())
	assert.Equal(t, []int{3, 3, 3, 3, 3}, w.Stats.Ints())
}
