package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

var errSetMany = errors.New("disco lleno")

// flakyKV envuelve el almacén en memoria y puede hacer fallar SetMany.
type flakyKV struct {
	*memory.KVStore
	mu          sync.Mutex
	failSetMany bool
}

func (k *flakyKV) SetMany(ctx context.Context, entries map[string][]byte) error {
	k.mu.Lock()
	fail := k.failSetMany
	k.mu.Unlock()
	if fail {
		return errSetMany
	}
	return k.KVStore.SetMany(ctx, entries)
}

func (k *flakyKV) setFail(v bool) {
	k.mu.Lock()
	k.failSetMany = v
	k.mu.Unlock()
}

type fixture struct {
	kv       *flakyKV
	repo     *storage.Service
	store    *state.Store
	clock    time.Time
	activity *usecase.ActivityUseCase
	products *usecase.ProductUseCase
	sales    *usecase.SaleUseCase
	settings *usecase.SettingsUseCase
	export   *usecase.ExportUseCase
}

// newFixture arranca con el catálogo inicial y un reloj fijo.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		kv:    &flakyKV{KVStore: memory.NewKVStore()},
		clock: time.UnixMilli(1_700_000_123_456).UTC(),
	}
	now := func() time.Time { return f.clock }
	f.repo = storage.NewService(f.kv, f.kv, storage.WithClock(now))

	initial, err := state.Bootstrap(context.Background(), f.repo, f.clock)
	require.NoError(t, err)
	f.store = state.New(initial)
	t.Cleanup(f.store.Close)

	log := logger.Nop()
	f.activity = usecase.NewActivityUseCase(f.store, f.repo, now, log)
	f.products = usecase.NewProductUseCase(f.store, f.repo, f.activity, now)
	f.sales = usecase.NewSaleUseCase(f.store, f.repo, f.activity, ports.NopMetrics{}, now, log)
	f.settings = usecase.NewSettingsUseCase(f.store, f.repo, f.activity, now)
	f.export = usecase.NewExportUseCase(f.store, nil, now)
	return f
}

// product lee un producto del estado en memoria.
func (f *fixture) product(t *testing.T, id string) entity.Product {
	t.Helper()
	var out entity.Product
	found := false
	require.NoError(t, f.store.Do(context.Background(), func(d *state.Data) error {
		if idx := state.FindProduct(d.Products, id); idx >= 0 {
			out, found = d.Products[idx], true
		}
		return nil
	}))
	require.True(t, found, "producto %s", id)
	return out
}
