// Package file keeps a single state in a JSON file, the format written by --state.
// Every profile shares that state.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var _ repository.State = new(Repo)

type Repo struct {
	mu   sync.Mutex
	path string
}

func New(path string) *Repo {
	return &Repo{path: path}
}

// Load implements repository.State. A missing file is an empty state.
func (r *Repo) Load(_ context.Context, _ string) (stats.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return stats.State{}, nil
	}
	if err != nil {
		return stats.State{}, err
	}
	defer f.Close()

	s, err := stats.Decode(f)
	if err != nil {
		return stats.State{}, fmt.Errorf("invalid state file %s: %w", r.path, err)
	}
	return s, nil
}

// Save implements repository.State. The file is replaced as a whole so a
// crash never leaves half a state behind.
func (r *Repo) Save(_ context.Context, _ string, s stats.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".wordle-state-*")
	if err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(tmp.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Err(err).Caller().Msg("failed to remove temporary state file")
		}
	}()

	if err = stats.Encode(tmp, s); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}
