package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/repository"
)

// Session is a game played by a profile through the server or the bot.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	profile   string
	createdAt time.Time
	updatedAt time.Time
	g         *game.Game
	recorded  bool // whether the finished game was added to the profile statistics
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Profile() string {
	return s.profile
}

// Response returns the current view of the game.
func (s *Session) Response() game.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return game.ToResponse(s.g)
}

func (s *Session) idle(now time.Time) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.updatedAt), s.g.Status().Ended()
}

// NewSession starts a game for profile. An empty answer is taken from the generator.
func (s *Service) NewSession(profile, answer string, difficult bool) (*Session, error) {
	if profile == "" {
		return nil, ErrNoPlayer
	}
	g, err := s.NewGame(answer, difficult)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	sess := &Session{
		id:        uuid.New(),
		profile:   profile,
		createdAt: now,
		updatedAt: now,
		g:         g,
	}
	s.set(sess)
	log.Debug().Str("session", sess.id.String()).Str("profile", profile).Msg("session started")
	return sess, nil
}

func (s *Service) Session(id uuid.UUID) (*Session, error) {
	sess, ok := s.get(id)
	if !ok {
		return nil, ErrNoSession
	}
	return sess, nil
}

// Guess plays a guess in a session. The game is added to the profile
// statistics once it ends; further guesses fail with ErrSessionEnded.
func (s *Service) Guess(ctx context.Context, id uuid.UUID, guess string) (game.PlayResponse, error) {
	sess, err := s.Session(id)
	if err != nil {
		return game.PlayResponse{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.g.Status().Ended() {
		return game.PlayResponse{}, ErrSessionEnded
	}
	status, err := sess.g.Guess(normalize(guess), s.lists.Acceptable)
	if err != nil {
		return game.PlayResponse{}, err
	}
	sess.updatedAt = time.Now()

	if status.Ended() {
		// a failed recording is retried by Summary
		s.record(ctx, sess)
	}
	return game.ToPlay(sess.g, status), nil
}

// record adds the finished game of sess to its profile once. sess.mu must be held.
func (s *Service) record(ctx context.Context, sess *Session) {
	if sess.recorded {
		return
	}
	if err := s.Record(ctx, sess.profile, sess.g); err != nil {
		log.Warn().Str("session", sess.id.String()).Msg("game not recorded, will retry")
		return
	}
	sess.recorded = true
}

// recordPending records the finished games of profile that are not recorded yet.
func (s *Service) recordPending(ctx context.Context, profile string) {
	s.hub.mu.RLock()
	var pending []*Session
	for _, sess := range s.sessions {
		if sess.profile == profile {
			pending = append(pending, sess)
		}
	}
	s.hub.mu.RUnlock()

	for _, sess := range pending {
		sess.mu.Lock()
		if sess.g.Status().Ended() {
			s.record(ctx, sess)
		}
		sess.mu.Unlock()
	}
}

// Hint suggests a word that agrees with every guess of the session.
func (s *Service) Hint(id uuid.UUID) (string, error) {
	sess, err := s.Session(id)
	if err != nil {
		return "", err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.g.Status().Ended() {
		return "", ErrSessionEnded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return sess.g.Hint(s.lists.Acceptable, s.rnd)
}

// SetDifficult switches difficult mode of a running session.
func (s *Service) SetDifficult(id uuid.UUID, difficult bool) error {
	sess, err := s.Session(id)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.g.Status().Ended() {
		return ErrSessionEnded
	}
	sess.g.SetDifficult(difficult)
	sess.updatedAt = time.Now()
	return nil
}

// snapshot returns the running sessions that have not ended.
func (s *Service) snapshot() []repository.Session {
	s.hub.mu.RLock()
	defer s.hub.mu.RUnlock()

	sessions := make([]repository.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sess.mu.Lock()
		if !sess.g.Status().Ended() {
			sessions = append(sessions, repository.Session{
				ID:        sess.id,
				Profile:   sess.profile,
				Game:      sess.g.Snapshot(),
				CreatedAt: sess.createdAt,
			})
		}
		sess.mu.Unlock()
	}
	return sessions
}

func (s *Service) restoreSession(rs repository.Session) (*Session, error) {
	g, err := game.Restore(rs.Game, s.lists.Final, s.lists.Acceptable)
	if err != nil {
		return nil, err
	}
	return &Session{
		id:        rs.ID,
		profile:   rs.Profile,
		createdAt: rs.CreatedAt,
		updatedAt: time.Now(),
		g:         g,
	}, nil
}
