package storage

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *RedisKV {
	t.Helper()
	mr := miniredis.RunT(t)
	return NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
}

func TestRedisKVRoundTrip(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "doc", []byte(`{"a":1}`)))

	data, err := kv.Get(ctx, "doc")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"a":1}`), data)

	require.NoError(t, kv.Delete(ctx, "doc"))
	_, err = kv.Get(ctx, "doc")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisKVMissingKey(t *testing.T) {
	kv := newTestKV(t)
	_, err := kv.Get(context.Background(), "never-written")
	require.ErrorIs(t, err, ErrKeyNotFound)
}
