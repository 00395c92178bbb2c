// Package repository is responsible for the permanent storage of data of this application
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kodekulture/wordle/game"
	"github.com/kodekulture/wordle/stats"
)

// Key prefixes shared by the key-value backends
const (
	StatePrefix   = "state:"
	SessionPrefix = "session:"
)

type State interface {
	// Load returns the saved state of a profile, or an empty state if nothing was saved yet
	Load(ctx context.Context, profile string) (stats.State, error)

	// Save replaces the state of a profile
	Save(ctx context.Context, profile string, s stats.State) error
}

// Session is a running game kept across server restarts.
type Session struct {
	ID        uuid.UUID     `json:"id"`
	Profile   string        `json:"profile"`
	Game      game.Snapshot `json:"game"`
	CreatedAt time.Time     `json:"created_at"`
}

type HubBackup interface {
	// LoadHub loads the sessions saved by the last DumpHub
	LoadHub(ctx context.Context) ([]Session, error)
	// DumpHub saves the running sessions
	DumpHub(ctx context.Context, sessions []Session) error
	// DropHub deletes the saved sessions
	DropHub(ctx context.Context) error
}
