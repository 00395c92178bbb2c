// local.go: generates a random word from a word list

package word

import (
	"math/rand/v2"
	"strconv"
)

// Length is the length of the word to be guessed
const Length = 5

// localWordGenerator generates a word from one of the words in a List
type localWordGenerator struct {
	list *List
}

func NewLocalGen(list *List) *localWordGenerator {
	return &localWordGenerator{list: list}
}

func (g *localWordGenerator) Generate(length int) string {
	if length != Length {
		panic("only " + strconv.Itoa(Length) + " letter words are supported")
	}
	return g.list.words[rand.IntN(len(g.list.words))]
}

func (g *localWordGenerator) Validate(guess string) bool {
	return g.list.Contains(guess)
}
