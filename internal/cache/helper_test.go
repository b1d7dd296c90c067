package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	mr := miniredis.RunT(t)
	Client = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = Client.Close()
		Client = nil
	})
	return mr
}

func TestGetSetJSON(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	var missing payload
	found, err := GetJSON(ctx, "nope", &missing)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "item", payload{Name: "hack-night", Count: 3}, time.Minute))

	var got payload
	found, err = GetJSON(ctx, "item", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "hack-night", got.Name)
	assert.Equal(t, 3, got.Count)
}

func TestSetJSON_TTLExpires(t *testing.T) {
	mr := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "short", "value", time.Second))
	mr.FastForward(2 * time.Second)

	var got string
	found, err := GetJSON(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestInvalidate(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, SetJSON(ctx, "a", 1, time.Minute))
	require.NoError(t, SetJSON(ctx, "b", 2, time.Minute))

	Invalidate(ctx, "a", "b")

	var got int
	found, err := GetJSON(ctx, "a", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAside(t *testing.T) {
	setupMiniredis(t)
	ctx := context.Background()

	calls := 0
	fetch := func(dest *string) func() error {
		return func() error {
			calls++
			*dest = "from-db"
			return nil
		}
	}

	var first string
	require.NoError(t, Aside(ctx, "k", &first, time.Minute, fetch(&first)))
	assert.Equal(t, "from-db", first)
	assert.Equal(t, 1, calls)

	// Second read is served from the cache; fetch is not called again.
	var second string
	require.NoError(t, Aside(ctx, "k", &second, time.Minute, fetch(&second)))
	assert.Equal(t, "from-db", second)
	assert.Equal(t, 1, calls)
}

func TestHelpersNoOpWithoutClient(t *testing.T) {
	Client = nil
	ctx := context.Background()

	var got string
	found, err := GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetJSON(ctx, "k", "v", time.Minute))
	Invalidate(ctx, "k")

	// Aside always falls through to the fetch function.
	require.NoError(t, Aside(ctx, "k", &got, time.Minute, func() error {
		got = "direct"
		return nil
	}))
	assert.Equal(t, "direct", got)
}
