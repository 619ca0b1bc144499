package redis

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_EmptyAddr(t *testing.T) {
	_, err := Open(context.Background(), "", "", 0)
	assert.Error(t, err)
}

func TestOpen_Unreachable(t *testing.T) {
	_, err := Open(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

func TestHealthy(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	client, err := Open(context.Background(), addr, "", 0)
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, client.Healthy(context.Background()))
}
