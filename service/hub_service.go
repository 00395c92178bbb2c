package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// SessionDuration is how long a session may stay idle before it is deleted
	SessionDuration = time.Hour
	// EndedSessionDuration is how long a finished session is kept so its result can still be read.
	// It is shorter than SessionDuration because nothing can be played anymore.
	EndedSessionDuration = time.Minute * 15

	gcInterval = 15 * time.Minute
)

type hub struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

func newHub(s map[uuid.UUID]*Session) *hub {
	if s == nil {
		s = make(map[uuid.UUID]*Session)
	}
	return &hub{sessions: s}
}

// get returns the session with the given id and a bool indicating whether the session was found.
func (h *hub) get(id uuid.UUID) (*Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	s, ok := h.sessions[id]
	return s, ok
}

func (h *hub) set(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.id] = s
}

// DeleteSession deletes the session with the given id.
func (h *hub) DeleteSession(id uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}

// Len returns the number of running sessions.
func (h *hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// mark returns the sessions that have expired at now.
func (h *hub) mark(now time.Time) []uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var garbage []uuid.UUID
	for id, s := range h.sessions {
		idle, ended := s.idle(now)
		if idle >= SessionDuration || (ended && idle >= EndedSessionDuration) {
			garbage = append(garbage, id)
		}
	}
	return garbage
}

func (h *hub) sweep(garbage []uuid.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, id := range garbage {
		delete(h.sessions, id)
	}
}

// gc alternates between marking expired sessions and deleting them on the next tick,
// so a session gets one more interval to be played before it goes.
func (h *hub) gc(ctx context.Context) {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()

	isMarkPhase := true
	var garbage []uuid.UUID

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if isMarkPhase {
				garbage = h.mark(now)
			} else {
				// a session played since it was marked is kept
				marked := make(map[uuid.UUID]bool, len(garbage))
				for _, id := range garbage {
					marked[id] = true
				}
				var expired []uuid.UUID
				for _, id := range h.mark(now) {
					if marked[id] {
						expired = append(expired, id)
					}
				}
				h.sweep(expired)
				if len(expired) > 0 {
					log.Debug().Int("sessions", len(expired)).Msg("expired sessions deleted")
				}
				garbage = nil
			}
			isMarkPhase = !isMarkPhase
		}
	}
}
