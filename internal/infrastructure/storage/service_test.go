package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
)

func TestService_SesionVenceAlLeerla(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	durable, session := memory.NewKVStore(), memory.NewKVStore()
	svc := storage.NewService(durable, session,
		storage.WithClock(func() time.Time { return now }),
		storage.WithSessionExpiry(time.Hour))

	got, err := svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	s := entity.Session{ID: "s1", User: entity.Accounts[1].User, LoginTime: now}
	require.NoError(t, svc.SetSession(ctx, s))
	assert.Empty(t, durable.Keys(), "la sesión vive en su propio almacén")

	got, err = svc.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "vendedor", got.User.Username)

	now = now.Add(time.Hour + time.Minute)
	got, err = svc.GetSession(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, session.Keys(), "la sesión vencida se elimina")

	require.NoError(t, svc.ClearSession(ctx), "borrar sin sesión no falla")
}

func TestService_BitacoraAcotada(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	svc := storage.NewService(kv, kv)

	for i := 0; i < entity.MaxActivityLogs+3; i++ {
		require.NoError(t, svc.SaveLog(ctx, entity.ActivityLog{ID: string(rune('a' + i%26)), Details: time.Duration(i).String()}))
	}

	logs, err := svc.GetLogs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, entity.MaxActivityLogs)
	assert.Equal(t, time.Duration(entity.MaxActivityLogs+2).String(), logs[0].Details, "la última entrada va primero")
}

func TestService_PreferenciasYBorrado(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	svc := storage.NewService(kv, kv)

	methods, err := svc.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Nil(t, methods, "sin guardar no hay lista")

	require.NoError(t, svc.SavePaymentMethods(ctx, []string{"Yape"}))
	require.NoError(t, svc.SaveRememberMe(ctx, "admin"))
	require.NoError(t, svc.SaveProducts(ctx, entity.InitialProducts(time.Now())))
	require.NoError(t, svc.SaveSaleCompletion(ctx, nil, []entity.Sale{{ID: "V-1", Total: decimal.NewFromInt(3)}}))
	require.NoError(t, svc.SaveLog(ctx, entity.ActivityLog{ID: "l1"}))

	require.NoError(t, svc.ClearAll(ctx))

	products, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
	sales, err := svc.GetSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, sales)
	logs, err := svc.GetLogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs)

	methods, err = svc.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Yape"}, methods)
	name, err := svc.GetRememberMe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", name)

	require.NoError(t, svc.SaveRememberMe(ctx, ""))
	name, err = svc.GetRememberMe(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestService_VentaGuardaPrecioDecimal(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	svc := storage.NewService(kv, kv)

	sale := entity.Sale{
		ID:    "V-000001",
		Items: []entity.SaleItem{{ProductID: "1", Name: "x", Quantity: 3, Price: decimal.RequireFromString("0.10")}},
		Total: decimal.RequireFromString("0.30"),
	}
	require.NoError(t, svc.SaveSales(ctx, []entity.Sale{sale}))

	sales, err := svc.GetSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].Total.Equal(decimal.RequireFromString("0.3")))
	assert.True(t, sales[0].Items[0].Subtotal().Equal(sales[0].Total))
}
