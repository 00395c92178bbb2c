package word

import (
	"encoding/json"
	"strings"
)

// LetterStatus is an enum type for the Status of a letter in a word guess
type (
	LetterStatus   int
	LetterStatuses []LetterStatus
)

// The order of the values matters: a letter's best-known status is the maximum
// of all statuses it has received.
const (
	Unknown   LetterStatus = iota // The letter has not been played
	Incorrect                     // The letter is not in the word to be guessed
	Exists                        // The letter is in the word but in the wrong position
	Correct                       // The letter is in the word and in the correct position
)

// Char returns the single letter code of s: X, R, Y or G.
func (s LetterStatus) Char() byte {
	switch s {
	case Incorrect:
		return 'R'
	case Exists:
		return 'Y'
	case Correct:
		return 'G'
	default:
		return 'X'
	}
}

func (s LetterStatus) String() string {
	return string(s.Char())
}

// Max returns the higher ranked of s and o.
func (s LetterStatus) Max(o LetterStatus) LetterStatus {
	if o > s {
		return o
	}
	return s
}

func (s LetterStatuses) Ints() []int {
	ints := make([]int, len(s))
	for i, v := range s {
		ints[i] = int(v)
	}
	return ints
}

// String renders the statuses as letter codes, e.g. "RYGRR".
func (s LetterStatuses) String() string {
	b := make([]byte, len(s))
	for i, v := range s {
		b[i] = v.Char()
	}
	return string(b)
}

// Word contains a guessed word and the Status of each of its letters,
// for example the word 'WEIRD' played against 'WORLD' has the following
// Stats
//
// W -> Correct
// E -> Incorrect
// I -> Incorrect
// R -> Exists
// D -> Correct
type Word struct {
	Word  string         `json:"word"`
	Stats LetterStatuses `json:"stats"`
}

func New(word string) Word {
	stats := make([]LetterStatus, len(word))
	return Word{strings.ToUpper(word), stats}
}

// Correct returns true if the word is correct
func (w Word) Correct() bool {
	if w.Word == "" || len(w.Stats) == 0 {
		return false
	}
	for _, c := range w.Stats {
		if c != Correct {
			return false
		}
	}
	return true
}

// Check compares the word to the correct word,
// sets the LetterStatus of each letter of `w` *Word
// and returns the statuses.
//
// Letters matching the correct word in place are marked first. The rest are
// claimed left to right against what remains of the correct word, so a letter
// guessed more often than it occurs is marked Exists only for its leftmost
// occurrences.
func (w *Word) Check(correctWord Word) LetterStatuses {
	correct := correctWord.Word
	guess := w.Word

	wordStatus := make(LetterStatuses, len(guess))
	for key := range wordStatus {
		wordStatus[key] = Incorrect
	}

	// check if the lengths match
	if len(guess) != len(correct) {
		w.Stats = wordStatus
		return wordStatus
	}

	// letters of the correct word not matched in place
	remaining := make(map[byte]int)
	for i := 0; i < len(correct); i++ {
		remaining[correct[i]]++
	}

	// first parse the correct letters
	for i := 0; i < len(guess); i++ {
		if guess[i] == correct[i] {
			wordStatus[i] = Correct
			remaining[guess[i]]--
		}
	}

	// parse the letters that have wrong positions
	claimed := make(map[byte]int)
	for i := 0; i < len(guess); i++ {
		if wordStatus[i] == Correct {
			continue
		}
		c := guess[i]
		claimed[c]++
		if claimed[c] <= remaining[c] {
			wordStatus[i] = Exists
		}
	}
	w.Stats = wordStatus
	return wordStatus
}

func (w *Word) String() string {
	return w.Word
}

func (w Word) MarshalBinary() ([]byte, error) {
	return json.Marshal(w)
}
