package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/safestock/internal/application/ports"
	"github.com/tu-usuario/safestock/internal/infrastructure/redis"
)

func newTestCache(t *testing.T) (*redis.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redis.NewCache(client), mr
}

type payload struct {
	Total int    `json:"total"`
	Name  string `json:"name"`
}

func TestCache_SetGet(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "dashboard", payload{Total: 7, Name: "resumen"}, time.Minute))

	var got payload
	require.NoError(t, cache.Get(ctx, "dashboard", &got))
	assert.Equal(t, payload{Total: 7, Name: "resumen"}, got)
}

func TestCache_MissYDelete(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	var got payload
	err := cache.Get(ctx, "nada", &got)
	require.ErrorIs(t, err, ports.ErrCacheMiss)

	require.NoError(t, cache.Set(ctx, "dashboard", payload{Total: 1}, time.Minute))
	require.NoError(t, cache.Delete(ctx, "dashboard"))
	err = cache.Get(ctx, "dashboard", &got)
	require.ErrorIs(t, err, ports.ErrCacheMiss)

	// Delete sin claves es un no-op.
	require.NoError(t, cache.Delete(ctx))
}

func TestCache_ExpiraPorTTL(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "dashboard", payload{Total: 3}, time.Second))
	mr.FastForward(2 * time.Second)

	var got payload
	err := cache.Get(ctx, "dashboard", &got)
	require.ErrorIs(t, err, ports.ErrCacheMiss)
}
