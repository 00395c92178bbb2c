package game

import (
	"math/rand/v2"
)

// Hint returns an acceptable word that agrees with everything revealed so
// far, checked the strict way. Words are tried in a random order drawn from
// rnd so repeated calls may suggest different words.
func (g *Game) Hint(acceptable Dictionary, rnd *rand.Rand) (string, error) {
	words := acceptable.Sorted()
	rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	for _, w := range words {
		if g.ValidateGuess(true, true, w, acceptable) == nil {
			return w, nil
		}
	}
	return "", ErrNoHint
}

// Candidates counts the acceptable words that agree with everything revealed
// so far.
func (g *Game) Candidates(acceptable Dictionary) int {
	var n int
	for _, w := range acceptable.Sorted() {
		if g.ValidateGuess(true, true, w, acceptable) == nil {
			n++
		}
	}
	return n
}

// Dictionary is a Lexicon that can also list its words.
type Dictionary interface {
	Lexicon
	Sorted() []string
}
