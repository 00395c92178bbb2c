package game

import (
	"strconv"

	"github.com/kodekulture/wordle/game/word"
)

// Error is the kind of a rejected game operation. Every kind is recoverable:
// the game is left untouched and the caller may retry.
type Error int

const (
	// ErrUnexpectedWordLength is returned when a guess does not have word.Length letters
	ErrUnexpectedWordLength Error = iota + 1
	// ErrUnknownWord is returned when a guess is not an acceptable word
	ErrUnknownWord
	// ErrBadAnswer is returned when an answer is not in the final answers list
	ErrBadAnswer
	// ErrHintUnused is returned in difficult mode when a guess ignores revealed letters
	ErrHintUnused
	// ErrNoHint is returned when no acceptable word is consistent with the guesses so far
	ErrNoHint
)

func (e Error) Error() string {
	switch e {
	case ErrUnexpectedWordLength:
		return "The length of a word should be " + strconv.Itoa(word.Length) + "."
	case ErrUnknownWord:
		return "Unknown word, please try again."
	case ErrBadAnswer:
		return "That seems not suitable for a Wordle game. Maybe pick another?"
	case ErrHintUnused:
		return "You must use the hint in difficult mode."
	case ErrNoHint:
		return "No word matches the hints so far."
	default:
		return "unknown game error"
	}
}
