// generator.go: picks the answer of the next game

package word

import (
	"math/rand/v2"
	"slices"
	"strconv"
)

const (
	// DefaultSeed seeds the answer order when none is given
	DefaultSeed uint64 = 19260817
	// DefaultDay is the first day of a sequence
	DefaultDay = 1
)

type Generator interface {
	Generate(length int) string
}

// Sequence hands out the answers of a list in a shuffled order that only
// depends on the seed, one per day. Day 1 is the first answer.
type Sequence struct {
	answers []string
	cursor  int
}

// NewSequence shuffles answers with seed and starts at the given 1-based day.
func NewSequence(answers *List, seed uint64, day int) *Sequence {
	words := slices.Clone(answers.words)
	rnd := rand.New(rand.NewPCG(seed, seed))
	rnd.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	if day < DefaultDay {
		day = DefaultDay
	}
	return &Sequence{answers: words, cursor: (day - 1) % len(words)}
}

// Generate returns today's answer and moves on to the next day.
func (s *Sequence) Generate(length int) string {
	if length != Length {
		panic("only " + strconv.Itoa(Length) + " letter words are supported")
	}
	w := s.answers[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.answers)
	return w
}

// Day returns the 1-based day whose answer Generate returns next.
func (s *Sequence) Day() int {
	return s.cursor + 1
}
