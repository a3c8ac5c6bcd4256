package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
)

func TestStore_SerializesMutations(t *testing.T) {
	s := New(Data{Products: []entity.Product{{ID: "1", Stock: 0}}})
	defer s.Close()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), func(d *Data) error {
				d.Products[0].Stock++
				return nil
			})
		}()
	}
	wg.Wait()

	var stock int
	require.NoError(t, s.Do(context.Background(), func(d *Data) error {
		stock = d.Products[0].Stock
		return nil
	}))
	assert.Equal(t, 50, stock)
}

func TestStore_ReturnsCommandError(t *testing.T) {
	s := New(Data{})
	defer s.Close()

	boom := errors.New("boom")
	err := s.Do(context.Background(), func(*Data) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestStore_RecoversPanic(t *testing.T) {
	s := New(Data{})
	defer s.Close()

	err := s.Do(context.Background(), func(*Data) error { panic("x") })
	require.Error(t, err)

	// el escritor sigue vivo
	assert.NoError(t, s.Do(context.Background(), func(*Data) error { return nil }))
}

func TestStore_ClosedAndCancelled(t *testing.T) {
	s := New(Data{})
	s.Close()
	assert.ErrorIs(t, s.Do(context.Background(), func(*Data) error { return nil }), ErrClosed)

	s2 := New(Data{})
	defer s2.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// con ctx cancelado puede ganar cualquiera de los dos casos del select
	err := s2.Do(ctx, func(*Data) error { return nil })
	if err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestBootstrap_SeedsEmptyStore(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewService(memory.NewKVStore(), memory.NewKVStore())
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	data, err := Bootstrap(ctx, repo, now)
	require.NoError(t, err)
	assert.Len(t, data.Products, 8)
	assert.Empty(t, data.Sales)
	assert.Equal(t, entity.DefaultPaymentMethods(), data.PaymentMethods)

	stored, err := repo.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 8)
	methods, err := repo.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultPaymentMethods(), methods)
}

func TestBootstrap_KeepsExistingData(t *testing.T) {
	ctx := context.Background()
	repo := storage.NewService(memory.NewKVStore(), memory.NewKVStore())
	require.NoError(t, repo.SaveProducts(ctx, []entity.Product{{ID: "x", Name: "Propio"}}))
	require.NoError(t, repo.SavePaymentMethods(ctx, []string{"Yape"}))

	data, err := Bootstrap(ctx, repo, time.Now())
	require.NoError(t, err)
	require.Len(t, data.Products, 1)
	assert.Equal(t, "x", data.Products[0].ID)
	assert.Equal(t, []string{"Yape"}, data.PaymentMethods)
}
