package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFileSlot(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "state")
	slot, err := NewFileSlot(dir)
	require.NoError(t, err)

	t.Run(`missing key`, func(t *testing.T) {
		_, err := slot.Get(ctx, "hiring-oracle-data")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run(`set then get`, func(t *testing.T) {
		require.NoError(t, slot.Set(ctx, "hiring-oracle-data", []byte(`[]`)))
		require.NoError(t, slot.Set(ctx, "hiring-oracle-data", []byte(`{"version":1}`)))
		data, err := slot.Get(ctx, "hiring-oracle-data")
		require.NoError(t, err)
		require.Equal(t, `{"version":1}`, string(data))
		require.FileExists(t, filepath.Join(dir, "hiring-oracle-data.json"))
	})

	t.Run(`no temp files left behind`, func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			require.NotContains(t, e.Name(), ".hiring-oracle-data.json.")
		}
	})

	t.Run(`keys are sanitised`, func(t *testing.T) {
		require.Equal(t, filepath.Join(dir, "a_b_c.json"), slot.Path("a/b c"))
		require.Equal(t, filepath.Join(dir, "default.json"), slot.Path("..."))
	})
}

func TestNewFileSlotRequiresDir(t *testing.T) {
	_, err := NewFileSlot("  ")
	require.Error(t, err)
}

func TestMemorySlotCopiesValues(t *testing.T) {
	ctx := context.Background()
	slot := NewMemorySlot()
	value := []byte("abc")
	require.NoError(t, slot.Set(ctx, "k", value))
	value[0] = 'z'
	got, err := slot.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(got))
	got[1] = 'z'
	again, _ := slot.Get(ctx, "k")
	require.Equal(t, "abc", string(again))
	require.Equal(t, []string{"k"}, slot.Keys())

	_, err = slot.Get(ctx, "other")
	require.ErrorIs(t, err, ErrNotFound)
}

type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisSlot(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{values: map[string]string{}}
	slot := newRedisSlotWithClient(fake)

	_, err := slot.Get(ctx, "k")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, slot.Set(ctx, "k", []byte("payload")))
	data, err := slot.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "payload", string(data))
	require.NoError(t, slot.Close())

	fake.err = errors.New("connection refused")
	_, err = slot.Get(ctx, "k")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
	require.Error(t, slot.Set(ctx, "k", []byte("x")))
}
