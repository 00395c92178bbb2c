// Package stats keeps the record of finished games of a player.
package stats

import (
	"cmp"
	"encoding/json"
	"io"
	"slices"

	"github.com/kodekulture/wordle/game"
)

// TopWords is how many of the most used guesses a Summary lists
const TopWords = 5

// Record is one finished game.
type Record struct {
	Answer  string   `json:"answer"`
	Guesses []string `json:"guesses"`
}

// Won returns true if the last guess is the answer
func (r Record) Won() bool {
	return len(r.Guesses) > 0 && r.Guesses[len(r.Guesses)-1] == r.Answer
}

// State is everything saved for a player.
type State struct {
	TotalRounds int      `json:"total_rounds"`
	Games       []Record `json:"games"`
}

// Record appends a finished game.
func (s *State) Record(answer string, guesses []string) {
	s.Games = append(s.Games, Record{Answer: answer, Guesses: slices.Clone(guesses)})
	s.TotalRounds = len(s.Games)
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	games := make([]Record, len(s.Games))
	for i, r := range s.Games {
		games[i] = Record{Answer: r.Answer, Guesses: slices.Clone(r.Guesses)}
	}
	return State{TotalRounds: s.TotalRounds, Games: games}
}

// FromGame converts a game to its record.
func FromGame(g *game.Game) Record {
	snap := g.Snapshot()
	return Record{Answer: snap.Answer, Guesses: snap.Guesses}
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type Summary struct {
	Wins         int         `json:"wins"`
	Fails        int         `json:"fails"`
	AverageTries float64     `json:"average_tries"` // over won games only
	Top          []WordCount `json:"top"`
}

// Summary counts wins and fails and finds the most used guesses.
// Ties in usage are broken by the word.
func (s State) Summary() Summary {
	var (
		sum   Summary
		tries int
	)
	used := make(map[string]int)
	for _, r := range s.Games {
		if r.Won() {
			sum.Wins++
			tries += len(r.Guesses)
		} else {
			sum.Fails++
		}
		for _, w := range r.Guesses {
			used[w]++
		}
	}
	if sum.Wins > 0 {
		sum.AverageTries = float64(tries) / float64(sum.Wins)
	}

	top := make([]WordCount, 0, len(used))
	for w, n := range used {
		top = append(top, WordCount{Word: w, Count: n})
	}
	slices.SortFunc(top, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Word, b.Word)
	})
	if len(top) > TopWords {
		top = top[:TopWords]
	}
	sum.Top = top
	return sum
}

// Decode reads a State written by Encode. An empty input is an empty State.
func Decode(r io.Reader) (State, error) {
	var s State
	err := json.NewDecoder(r).Decode(&s)
	if err == io.EOF {
		return State{}, nil
	}
	if err != nil {
		return State{}, err
	}
	return s, nil
}

func Encode(w io.Writer, s State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
