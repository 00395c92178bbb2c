package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/stats"
)

// NextAnswer returns the next answer of the generator.
func (s *Service) NextAnswer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wordGen.Generate(word.Length)
}

// NewGame starts a game. An empty answer is taken from the generator.
func (s *Service) NewGame(answer string, difficult bool) (*game.Game, error) {
	if answer == "" {
		answer = s.NextAnswer()
	}
	return game.New(normalize(answer), difficult, s.lists.Final)
}

// Record adds a finished game to the statistics of profile.
func (s *Service) Record(ctx context.Context, profile string, g *game.Game) error {
	unlock := s.lockProfile(profile)
	defer unlock()

	st, err := s.repo.Load(ctx, profile)
	if err != nil {
		log.Err(err).Caller().Str("profile", profile).Msg("error loading stats")
		return ErrStorage
	}
	r := stats.FromGame(g)
	st.Record(r.Answer, r.Guesses)
	if err = s.repo.Save(ctx, profile, st); err != nil {
		log.Err(err).Caller().Str("profile", profile).Msg("error saving stats")
		return ErrStorage
	}
	return nil
}

// Summary first records the finished games of profile whose recording failed.
func (s *Service) Summary(ctx context.Context, profile string) (stats.Summary, error) {
	s.recordPending(ctx, profile)
	st, err := s.repo.Load(ctx, profile)
	if err != nil {
		log.Err(err).Caller().Str("profile", profile).Msg("error loading stats")
		return stats.Summary{}, ErrStorage
	}
	return st.Summary(), nil
}

// lockProfile locks the state of profile until the returned func is called.
func (s *Service) lockProfile(profile string) func() {
	s.profilesMu.Lock()
	mu, ok := s.profiles[profile]
	if !ok {
		mu = new(sync.Mutex)
		s.profiles[profile] = mu
	}
	s.profilesMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
