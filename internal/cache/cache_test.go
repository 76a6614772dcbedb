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

type payload struct {
	Title string `json:"title"`
	Count int    `json:"count"`
}

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, "test"), mr
}

func TestGetSetRoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	value := payload{Title: "Smart Traffic", Count: 3}
	require.NoError(t, c.Set(ctx, "ps:list", value, time.Minute))

	var got payload
	require.NoError(t, c.Get(ctx, "ps:list", &got))
	assert.Equal(t, value, got)
}

func TestGetMiss(t *testing.T) {
	c, _ := setupCache(t)

	var got payload
	err := c.Get(context.Background(), "absent", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestExpiry(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "ps:list", payload{Title: "x"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	var got payload
	err := c.Get(ctx, "ps:list", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestDelete(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "ps:list", payload{Title: "x"}, time.Minute))
	require.NoError(t, c.Delete(ctx, "ps:list"))

	var got payload
	err := c.Get(ctx, "ps:list", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNilClientDegradesGracefully(t *testing.T) {
	c := New(nil, "test")
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", payload{}, time.Minute))
	assert.NoError(t, c.Delete(ctx, "k"))

	var got payload
	err := c.Get(ctx, "k", &got)
	assert.ErrorIs(t, err, ErrCacheUnavailable)
}
