package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodekulture/wordle/repository/repotest"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "wordle:state:tg:42", key("tg:42"))
}

func TestStateRepository(t *testing.T) {
	url := os.Getenv("WORDLE_TEST_REDIS_URL")
	if url == "" {
		t.Skip("WORDLE_TEST_REDIS_URL is not set")
	}
	cl, err := NewClient(context.Background(), url)
	require.NoError(t, err)
	defer cl.Close()

	r := NewStateRepository(cl)
	repotest.TestState(t, r)
	repotest.TestProfiles(t, r)
}
