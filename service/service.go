package service

import (
	"context"
	"math/rand/v2"
	"strings"
	"sync"

	"github.com/lordvidex/errs"
	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/game/word"
	"github.com/kodekulture/wordle/repository"
)

var (
	ErrNoPlayer     = errs.B().Code(errs.InvalidArgument).Msg("player not provided").Err()
	ErrNoSession    = errs.B().Code(errs.Unauthenticated).Msg("session not found or expired").Err()
	ErrSessionEnded = errs.B().Code(errs.InvalidArgument).Msg("the game has ended").Err()
	ErrStorage      = errs.B().Code(errs.Internal).Msg("failed to access player statistics").Err()
)

// Lists are the word lists a service plays with. Final must be a subset of Acceptable.
type Lists struct {
	Acceptable *word.List
	Final      *word.List
}

type Service struct {
	*hub
	lists  Lists
	repo   repository.State
	backup repository.HubBackup

	mu      sync.Mutex // protects wordGen and rnd
	wordGen word.Generator
	rnd     *rand.Rand

	profilesMu sync.Mutex
	profiles   map[string]*sync.Mutex // serializes updates of each profile state
}

func New(lists Lists, gen word.Generator, repo repository.State) *Service {
	return &Service{
		hub:     newHub(nil),
		lists:   lists,
		repo:    repo,
		wordGen: gen,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),

		profiles: make(map[string]*sync.Mutex),
	}
}

func (s *Service) Lists() Lists {
	return s.lists
}

// Run collects expired sessions until ctx is done.
func (s *Service) Run(ctx context.Context) {
	s.hub.gc(ctx)
}

// LoadBackup restores the sessions saved by the last Stop and then drops them from b.
// Stop saves to b afterwards.
func (s *Service) LoadBackup(ctx context.Context, b repository.HubBackup) error {
	s.backup = b
	saved, err := b.LoadHub(ctx)
	if err != nil {
		log.Err(err).Caller().Msg("error loading hub")
		return err
	}
	for _, rs := range saved {
		sess, err := s.restoreSession(rs)
		if err != nil {
			log.Err(err).Caller().Str("session", rs.ID.String()).Msg("dropping saved session")
			continue
		}
		s.set(sess)
	}
	log.Info().Int("sessions", len(saved)).Msg("hub loaded")
	return s.drop(ctx)
}

func (s *Service) drop(ctx context.Context) error {
	err := s.backup.DropHub(ctx)
	if err != nil {
		log.Err(err).Caller().Msg("error dropping hub")
		return err
	}
	return nil
}

// Stop saves the running sessions if a backup was loaded.
func (s *Service) Stop(ctx context.Context) {
	if s.backup == nil {
		return
	}
	sessions := s.snapshot()
	if err := s.backup.DumpHub(ctx, sessions); err != nil {
		log.Err(err).Caller().Msg("failed to dump hub")
		return
	}
	log.Info().Int("sessions", len(sessions)).Msg("hub saved")
}

// normalize turns user input into the form stored in word lists.
func normalize(w string) string {
	return strings.ToUpper(strings.TrimSpace(w))
}
