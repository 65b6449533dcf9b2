package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Port 1 on loopback is never listening; every redis call fails with a
// connection error, which the client must swallow.
func newUnreachableClient() *Client {
	return New("127.0.0.1:1", "", 0)
}

func TestClient_UnreachableRedisIsAMiss(t *testing.T) {
	c := newUnreachableClient()
	ctx := context.Background()

	// Set is a silent no-op.
	assert.NoError(t, c.Set(ctx, "todos:owner-a", []byte(`[]`), time.Minute))

	// Get behaves like a miss, never an error.
	data, err := c.Get(ctx, "todos:owner-a")
	assert.NoError(t, err)
	assert.Nil(t, data)

	// Delete is a silent no-op.
	assert.NoError(t, c.Delete(ctx, "todos:owner-a"))
}

func TestClient_NilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, "todos:owner-a")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, "todos:owner-a", []byte(`[]`), time.Minute))
	assert.NoError(t, c.Delete(ctx, "todos:owner-a"))
}
