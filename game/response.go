package game

import (
	"github.com/lordvidex/x/ptr"

	"github.com/kodekulture/wordle/game/word"
)

type Response struct {
	Round     int             `json:"round"`
	Difficult bool            `json:"difficult"`
	Status    string          `json:"status"`
	Answer    *string         `json:"answer,omitempty"` // returned only if game has ended
	Guesses   []GuessResponse `json:"guesses"`
	Alphabet  string          `json:"alphabet"`
}

type GuessResponse struct {
	// Word can be nil when the guess is shown to someone else
	Word   *string `json:"word,omitempty"`
	Marks  string  `json:"marks"`
	Status []int   `json:"status"`
}

// PlayResponse is the result of a single guess
type PlayResponse struct {
	Result   GuessResponse `json:"result"`
	Status   string        `json:"status"`
	Round    int           `json:"round"`
	Answer   *string       `json:"answer,omitempty"`
	Alphabet string        `json:"alphabet"`
}

// ToResponse converts a game to its JSON view.
func ToResponse(g *Game) Response {
	status := g.Status()
	guesses := make([]GuessResponse, 0, g.Round())
	for _, w := range g.Guesses() {
		guesses = append(guesses, ToGuess(w, true))
	}
	return Response{
		Round:     g.Round(),
		Difficult: g.Difficult(),
		Status:    status.Outcome.String(),
		Answer:    revealed(g, status),
		Guesses:   guesses,
		Alphabet:  g.Alphabet().String(),
	}
}

// ToPlay converts the outcome of the latest guess to its JSON view.
func ToPlay(g *Game, status GameStatus) PlayResponse {
	last, _ := g.Last()
	return PlayResponse{
		Result:   ToGuess(last, true),
		Status:   status.Outcome.String(),
		Round:    g.Round(),
		Answer:   revealed(g, status),
		Alphabet: g.Alphabet().String(),
	}
}

// ToGuess converts a word.Word to a GuessResponse.
// If showWord is true, the word is returned, otherwise it is nil.
func ToGuess(w word.Word, showWord bool) GuessResponse {
	guessed := func() *string {
		if showWord {
			return ptr.String(w.Word)
		}
		return nil
	}
	return GuessResponse{
		Word:   guessed(),
		Marks:  w.Stats.String(),
		Status: w.Stats.Ints(),
	}
}

func revealed(g *Game, status GameStatus) *string {
	if !status.Ended() {
		return nil
	}
	return ptr.String(g.Answer())
}

// Snapshot is the saved form of a game. The alphabet is not stored since it
// follows from the guesses.
type Snapshot struct {
	Answer    string   `json:"answer"`
	Difficult bool     `json:"difficult"`
	Guesses   []string `json:"guesses"`
}

func (g *Game) Snapshot() Snapshot {
	guesses := make([]string, len(g.guesses))
	for i, w := range g.guesses {
		guesses[i] = w.Word
	}
	return Snapshot{Answer: g.answer.Word, Difficult: g.difficult, Guesses: guesses}
}

// Restore rebuilds a game by replaying the saved guesses. Difficult mode is
// applied after the replay because it may have been switched during the game.
func Restore(s Snapshot, answers, acceptable Lexicon) (*Game, error) {
	g, err := New(s.Answer, false, answers)
	if err != nil {
		return nil, err
	}
	for _, guess := range s.Guesses {
		if g.Status().Ended() {
			break
		}
		if _, err = g.Guess(guess, acceptable); err != nil {
			return nil, err
		}
	}
	g.SetDifficult(s.Difficult)
	return g, nil
}
