package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-pro/pkg/config"
)

// Requiere PostgreSQL: POSTGRES_TEST_URL=postgres://... go test ./...
func TestKVStore_Integracion(t *testing.T) {
	dsn := os.Getenv("POSTGRES_TEST_URL")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	kv := postgres.NewKVStore(pool)
	require.NoError(t, kv.EnsureSchema(ctx))
	t.Cleanup(func() { _ = kv.Remove(context.Background(), "pg_test_a", "pg_test_b") })

	require.NoError(t, kv.SetMany(ctx, map[string][]byte{"pg_test_a": []byte("1"), "pg_test_b": []byte("2")}))
	require.NoError(t, kv.Set(ctx, "pg_test_a", []byte("3")))

	v, err := kv.Get(ctx, "pg_test_a")
	require.NoError(t, err)
	assert.Equal(t, "3", string(v))

	require.NoError(t, kv.Remove(ctx, "pg_test_b"))
	v, err = kv.Get(ctx, "pg_test_b")
	require.NoError(t, err)
	assert.Nil(t, v)
}
