// Package testutils provides shared fixtures and store helpers for tests
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/redis"
)

// CreateTestRedisClient starts an in-memory Redis and returns a client for
// it. The server is closed with the test.
func CreateTestRedisClient(t *testing.T) redis.Client {
	t.Helper()
	client, _ := CreateTestRedisServer(t)
	return client
}

// CreateTestRedisServer is CreateTestRedisClient that also hands back the
// miniredis server, for tests that inspect keys or fast-forward TTLs.
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
