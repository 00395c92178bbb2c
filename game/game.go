package game

import (
	"github.com/kodekulture/wordle/game/word"
)

const (
	// MaxGuesses is the maximum number of guesses a player can make
	MaxGuesses = 6

	// AlphabetSize is the number of letters tracked on the keyboard
	AlphabetSize = 26
)

// Lexicon is a set of words that can be checked for membership.
// *word.List is the usual implementation.
type Lexicon interface {
	Contains(w string) bool
}

type Outcome int

const (
	Going Outcome = iota
	Won
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Failed:
		return "failed"
	default:
		return "going"
	}
}

// GameStatus is the state of a game after a guess.
// Round is set when the game is Won, Answer when it has Failed.
type GameStatus struct {
	Outcome Outcome
	Round   int
	Answer  string
}

// Ended returns true if no more guesses are expected
func (s GameStatus) Ended() bool {
	return s.Outcome != Going
}

// Alphabet holds the best status seen so far for every letter, A first.
type Alphabet [AlphabetSize]word.LetterStatus

// Of returns the status of letter c ('A'..'Z').
func (a Alphabet) Of(c byte) word.LetterStatus {
	return a[index(c)]
}

// String renders the alphabet as 26 letter codes.
func (a Alphabet) String() string {
	return word.LetterStatuses(a[:]).String()
}

func index(c byte) int {
	return int(c - 'A')
}

// Game is a single player's Wordle game.
//
// A Game must be used from a single goroutine; callers sharing one across
// goroutines serialize access themselves.
type Game struct {
	answer    word.Word
	guesses   []word.Word
	alphabet  Alphabet
	difficult bool
}

// New starts a game for answer, which must be one of answers.
func New(answer string, difficult bool, answers Lexicon) (*Game, error) {
	if !answers.Contains(answer) {
		return nil, ErrBadAnswer
	}
	return &Game{
		answer:    word.New(answer),
		difficult: difficult,
	}, nil
}

// Round returns how many guesses have been made
func (g *Game) Round() int {
	return len(g.guesses)
}

// Guesses returns a copy of the guesses made so far, oldest first.
func (g *Game) Guesses() []word.Word {
	guesses := make([]word.Word, len(g.guesses))
	for i, w := range g.guesses {
		guesses[i] = word.Word{Word: w.Word, Stats: append(word.LetterStatuses(nil), w.Stats...)}
	}
	return guesses
}

// Last returns the most recent guess and false if nothing was guessed yet.
func (g *Game) Last() (word.Word, bool) {
	if len(g.guesses) == 0 {
		return word.Word{}, false
	}
	return g.Guesses()[len(g.guesses)-1], true
}

func (g *Game) Alphabet() Alphabet {
	return g.alphabet
}

func (g *Game) Answer() string {
	return g.answer.Word
}

func (g *Game) Difficult() bool {
	return g.difficult
}

// SetDifficult switches difficult mode without touching the guesses.
func (g *Game) SetDifficult(difficult bool) {
	g.difficult = difficult
}

// Status returns the status after the latest guess.
func (g *Game) Status() GameStatus {
	last, ok := g.Last()
	switch {
	case ok && last.Correct():
		return GameStatus{Outcome: Won, Round: g.Round()}
	case g.Round() >= MaxGuesses:
		return GameStatus{Outcome: Failed, Answer: g.answer.Word}
	default:
		return GameStatus{Outcome: Going}
	}
}

// ValidateGuess checks whether guess would be accepted without playing it.
//
// In difficult mode the guess has to agree with every previous guess, not
// only the last one, since difficult mode may have been off for some rounds:
// letters found in place stay in place and letters found in the answer are
// used again at least as many times.
//
// strict also rejects letters known to be absent beyond their found count and
// letters put back where they were already marked Exists. It is used to
// search for hints.
func (g *Game) ValidateGuess(difficult, strict bool, guess string, acceptable Lexicon) error {
	if !acceptable.Contains(guess) {
		return ErrUnknownWord
	}
	if len(guess) != word.Length {
		return ErrUnexpectedWordLength
	}
	if !difficult {
		return nil
	}

	guessCount := countLetters(guess)
	for _, prev := range g.guesses {
		// letters of prev known to be in the answer
		found := make(map[byte]int)
		for i := 0; i < len(prev.Word); i++ {
			c := prev.Word[i]
			switch prev.Stats[i] {
			case word.Correct:
				if guess[i] != c {
					return ErrHintUnused
				}
				found[c]++
			case word.Exists:
				found[c]++
			}
		}

		for c, n := range found {
			if guessCount[c] < n {
				return ErrHintUnused
			}
		}

		if !strict {
			continue
		}
		for i := 0; i < len(prev.Word); i++ {
			c := prev.Word[i]
			switch prev.Stats[i] {
			case word.Incorrect:
				if guessCount[c] != found[c] {
					return ErrHintUnused
				}
			case word.Exists:
				if guess[i] == c {
					return ErrHintUnused
				}
			}
		}
	}
	return nil
}

// Guess plays guess and returns the resulting status.
// On error the game is unchanged.
func (g *Game) Guess(guess string, acceptable Lexicon) (GameStatus, error) {
	if len(guess) != word.Length {
		return GameStatus{}, ErrUnexpectedWordLength
	}
	if err := g.ValidateGuess(g.difficult, false, guess, acceptable); err != nil {
		return GameStatus{}, err
	}

	w := word.New(guess)
	w.Check(g.answer)
	g.updateAlphabet(w)
	g.guesses = append(g.guesses, w)

	return g.Status(), nil
}

// updateAlphabet raises the status of each letter of w to the best one seen.
func (g *Game) updateAlphabet(w word.Word) {
	for i := 0; i < len(w.Word); i++ {
		idx := index(w.Word[i])
		g.alphabet[idx] = g.alphabet[idx].Max(w.Stats[i])
	}
}

func countLetters(s string) map[byte]int {
	count := make(map[byte]int, len(s))
	for i := 0; i < len(s); i++ {
		count[s[i]]++
	}
	return count
}
