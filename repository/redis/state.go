package redis

import (
	"context"
	"encoding/json"
	"errors"

	redis9 "github.com/redis/go-redis/v9"

	"github.com/kodekulture/wordle/repository"
	"github.com/kodekulture/wordle/stats"
)

var _ repository.State = StateRepository{}

// StateRepository keeps each player state as a JSON string.
type StateRepository struct {
	cl *redis9.Client
}

func NewStateRepository(cl *redis9.Client) StateRepository {
	return StateRepository{cl: cl}
}

// Load implements repository.State.
func (r StateRepository) Load(ctx context.Context, profile string) (stats.State, error) {
	str, err := r.cl.Get(ctx, key(profile)).Result()
	if errors.Is(err, redis9.Nil) {
		return stats.State{}, nil
	}
	if err != nil {
		return stats.State{}, err
	}
	var s stats.State
	if err = json.Unmarshal([]byte(str), &s); err != nil {
		return stats.State{}, err
	}
	return s, nil
}

// Save implements repository.State. States never expire.
func (r StateRepository) Save(ctx context.Context, profile string, s stats.State) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.cl.Set(ctx, key(profile), string(b), 0).Err()
}

func key(profile string) string {
	return "wordle:" + repository.StatePrefix + profile
}
