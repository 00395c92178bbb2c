// Package memory keeps player states in memory. Everything is lost when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var _ repository.State = new(Repo)

type Repo struct {
	mu     sync.RWMutex
	states map[string]stats.State
}

func New() *Repo {
	return &Repo{states: make(map[string]stats.State)}
}

// Load implements repository.State.
func (r *Repo) Load(_ context.Context, profile string) (stats.State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.states[profile].Clone(), nil
}

// Save implements repository.State.
func (r *Repo) Save(_ context.Context, profile string, s stats.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[profile] = s.Clone()
	return nil
}
