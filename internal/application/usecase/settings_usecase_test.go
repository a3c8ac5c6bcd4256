package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

func TestSettings_ToggleNoDejaListaVacia(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.settings.TogglePaymentMethod(ctx, "u1", entity.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PaymentCash, entity.PaymentTransfer}, out.Methods)

	out, err = f.settings.TogglePaymentMethod(ctx, "u1", entity.PaymentCard)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PaymentCash, entity.PaymentTransfer, entity.PaymentCard}, out.Methods)

	_, err = f.settings.TogglePaymentMethod(ctx, "u1", entity.PaymentCash)
	require.NoError(t, err)
	_, err = f.settings.TogglePaymentMethod(ctx, "u1", entity.PaymentTransfer)
	require.NoError(t, err)
	_, err = f.settings.TogglePaymentMethod(ctx, "u1", entity.PaymentCard)
	assert.ErrorIs(t, err, domain.ErrLastPaymentMethod)

	stored, err := f.repo.GetPaymentMethods(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{entity.PaymentCard}, stored)
}

func TestSettings_MetodosPersonalizados(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.settings.AddCustomPaymentMethod(ctx, "u1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := f.settings.AddCustomPaymentMethod(ctx, "u1", " Plin ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Plin"}, out.Custom)

	_, err = f.settings.AddCustomPaymentMethod(ctx, "u1", "Plin")
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = f.settings.RemoveCustomPaymentMethod(ctx, "u1", entity.PaymentCash)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err = f.settings.RemoveCustomPaymentMethod(ctx, "u1", "Plin")
	require.NoError(t, err)
	assert.Empty(t, out.Custom)
	assert.Len(t, out.Methods, 3)

	_, err = f.settings.RemoveCustomPaymentMethod(ctx, "u1", "Plin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSettings_ClearAllData(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("1", 2, "45")}})
	require.NoError(t, err)
	_, err = f.products.Create(ctx, "u1", productRequest("Z1", "Extra", 1, 0, "1"))
	require.NoError(t, err)
	_, err = f.sales.AddToCart(ctx, "2")
	require.NoError(t, err)

	assert.ErrorIs(t, f.settings.ClearAllData(ctx, "u2", entity.RoleVendedor, true), domain.ErrForbidden)
	assert.ErrorIs(t, f.settings.ClearAllData(ctx, "u1", entity.RoleAdmin, false), domain.ErrConfirmationRequired)

	require.NoError(t, f.settings.ClearAllData(ctx, "u1", entity.RoleAdmin, true))

	list, err := f.products.List(ctx, dto.InventoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, 8, list.Total, "vuelve el catálogo inicial")
	assert.Equal(t, 25, f.product(t, "1").Stock)

	history, err := f.sales.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history.Items)

	cart, err := f.sales.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	// La bitácora solo conserva la entrada del borrado.
	logs, err := f.activity.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.ActionDataCleared, logs[0].Action)

	methods, err := f.settings.PaymentMethods(ctx)
	require.NoError(t, err)
	assert.Len(t, methods.Methods, 3)
}
