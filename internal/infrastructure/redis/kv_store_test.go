package redis_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/infrastructure/redis"
)

// Requiere un Redis real: REDIS_TEST_ADDR=localhost:6379 go test ./...
func TestKVStore_Integracion(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR no definido")
	}
	ctx := context.Background()
	kv, err := redis.Connect(ctx, redis.Config{Addr: addr, Prefix: "test:" + uuid.NewString() + ":", TTL: time.Minute})
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	v, err := kv.Get(ctx, "sesion")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, kv.SetMany(ctx, map[string][]byte{"sesion": []byte(`{"id":"s1"}`), "otra": []byte("x")}))
	v, err = kv.Get(ctx, "sesion")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"s1"}`, string(v))

	require.NoError(t, kv.Remove(ctx, "sesion", "otra"))
	v, err = kv.Get(ctx, "sesion")
	require.NoError(t, err)
	assert.Nil(t, v)
}
