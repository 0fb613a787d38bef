package verdict_redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisVerdictStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisVerdictStoreWithURL("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store, mr
}

const transformURL = "https://proj.supabase.co/storage/v1/render/image/public/b/p.png?format=webp&width=800&quality=75&resize=cover"

func TestRedisVerdictStore_Miss(t *testing.T) {
	store, _ := newTestStore(t)

	ok, found, err := store.GetVerdict(context.Background(), transformURL)
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, ok)
}

func TestRedisVerdictStore_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetVerdict(ctx, transformURL, true, 0))
	require.NoError(t, store.SetVerdict(ctx, transformURL+"&x=1", false, 0))

	ok, found, err := store.GetVerdict(ctx, transformURL)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, ok)

	ok, found, err = store.GetVerdict(ctx, transformURL+"&x=1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, ok)
}

func TestRedisVerdictStore_Delete(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetVerdict(ctx, transformURL, false, time.Hour))
	require.NoError(t, store.DeleteVerdict(ctx, transformURL))
	assert.False(t, mr.Exists(Key(transformURL)))

	_, found, err := store.GetVerdict(ctx, transformURL)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.DeleteVerdict(ctx, transformURL))
}

func TestRedisVerdictStore_TTL(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetVerdict(ctx, transformURL, true, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL(Key(transformURL)))

	mr.FastForward(2 * time.Minute)

	_, found, err := store.GetVerdict(ctx, transformURL)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisVerdictStore_ConnectionError(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisVerdictStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	mr.Close()

	_, _, err := store.GetVerdict(context.Background(), transformURL)
	assert.Error(t, err)
	assert.Error(t, store.Ping(context.Background()))
}

func TestKey(t *testing.T) {
	k := Key(transformURL)
	assert.True(t, strings.HasPrefix(k, keyPrefix))
	assert.Len(t, k, len(keyPrefix)+64)
	assert.Equal(t, k, Key(transformURL))
	assert.NotEqual(t, k, Key(transformURL+"&x=1"))
}
