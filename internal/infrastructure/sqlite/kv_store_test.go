package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/infrastructure/sqlite"
)

func TestKVStore_PersisteEntreAperturas(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "gpro.db")

	kv, err := sqlite.Open(path)
	require.NoError(t, err)

	v, err := kv.Get(ctx, "nada")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, kv.Set(ctx, "a", []byte("1")))
	require.NoError(t, kv.Set(ctx, "a", []byte("2")))
	require.NoError(t, kv.SetMany(ctx, map[string][]byte{"b": []byte("x"), "c": []byte("y")}))
	require.NoError(t, kv.Close())

	kv, err = sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	v, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "2", string(v))

	require.NoError(t, kv.Remove(ctx, "a", "b", "inexistente"))
	require.NoError(t, kv.Remove(ctx))

	v, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Nil(t, v)
	v, err = kv.Get(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, "y", string(v))
}
