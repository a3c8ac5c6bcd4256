package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/usecase"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

func line(productID string, qty int, price string) dto.SaleItemDTO {
	return dto.SaleItemDTO{ProductID: productID, Quantity: qty, Price: decimal.RequireFromString(price)}
}

func TestComplete_DescuentaStockYPersiste(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sale, err := f.sales.Complete(ctx, "u2", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("4", 3, "5.00")}})
	require.NoError(t, err)

	assert.Equal(t, "V-123456", sale.ID)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "Camel (Unidad)", sale.Items[0].Name)
	assert.Equal(t, entity.SaleStatusCompleted, sale.Status)
	assert.Equal(t, 1, f.product(t, "4").Stock)

	// Lo persistido coincide con el estado.
	products, err := f.repo.GetProducts(ctx)
	require.NoError(t, err)
	for _, p := range products {
		if p.ID == "4" {
			assert.Equal(t, 1, p.Stock)
		}
	}
	sales, err := f.repo.GetSales(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "V-123456", sales[0].ID)
}

func TestComplete_IDConsecutivoConMismoReloj(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("8", 1, "2.25")}})
	require.NoError(t, err)
	second, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("8", 1, "2.25")}})
	require.NoError(t, err)

	assert.Equal(t, "V-123456", first.ID)
	assert.Equal(t, "V-123457", second.ID)

	history, err := f.sales.History(ctx)
	require.NoError(t, err)
	require.Len(t, history.Items, 2)
	assert.Equal(t, second.ID, history.Items[0].ID, "más reciente primero")
}

func TestComplete_ProductoInexistenteNoAfectaStock(t *testing.T) {
	f := newFixture(t)

	sale, err := f.sales.Complete(context.Background(), "u1", dto.CompleteSaleRequest{
		Items: []dto.SaleItemDTO{line("no-existe", 2, "3.00"), line("1", 1, "45.00")},
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(decimal.NewFromInt(51)))
	assert.Equal(t, 24, f.product(t, "1").Stock)
}

func TestComplete_VariasLineasDelMismoProductoSeSuman(t *testing.T) {
	f := newFixture(t)

	_, err := f.sales.Complete(context.Background(), "u1", dto.CompleteSaleRequest{
		Items: []dto.SaleItemDTO{line("2", 2, "42.50"), line("2", 3, "42.50")},
	})
	require.NoError(t, err)
	assert.Equal(t, 10, f.product(t, "2").Stock)
}

func TestComplete_PuedeDejarStockNegativo(t *testing.T) {
	f := newFixture(t)

	_, err := f.sales.Complete(context.Background(), "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("4", 6, "5.00")}})
	require.NoError(t, err)
	assert.Equal(t, -2, f.product(t, "4").Stock)
}

func TestComplete_TotalInformadoSeRespeta(t *testing.T) {
	f := newFixture(t)
	total := decimal.RequireFromString("10.00")

	sale, err := f.sales.Complete(context.Background(), "u1", dto.CompleteSaleRequest{
		Items: []dto.SaleItemDTO{line("3", 2, "5.50")},
		Total: &total,
	})
	require.NoError(t, err)
	assert.True(t, sale.Total.Equal(total))
}

func TestComplete_SinVendedorUsaSys(t *testing.T) {
	f := newFixture(t)

	sale, err := f.sales.Complete(context.Background(), "", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("3", 1, "5.50")}})
	require.NoError(t, err)
	assert.Equal(t, entity.SellerSystem, sale.SellerID)
}

func TestComplete_Validaciones(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("1", 0, "1")}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("1", 1, "1")}, Origin: "Marte"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	sale, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("1", 1, "45")}, Origin: entity.OriginWhatsApp, Client: "  Ana  "})
	require.NoError(t, err)
	assert.Equal(t, entity.OriginWhatsApp, sale.Origin)
	assert.Equal(t, "Ana", sale.Client)
}

// Si la escritura atómica falla, ni el catálogo ni el historial cambian.
func TestComplete_FalloDePersistenciaNoModificaEstado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.kv.setFail(true)

	_, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("4", 3, "5.00")}})
	require.ErrorIs(t, err, errSetMany)

	assert.Equal(t, 4, f.product(t, "4").Stock)
	history, err := f.sales.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history.Items)

	stored, err := f.repo.GetSales(ctx)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestNextSaleID_SaltaIDsUsados(t *testing.T) {
	now := time.UnixMilli(999_999)
	taken := []entity.Sale{{ID: "V-999999"}, {ID: "V-000000"}}
	assert.Equal(t, "V-000001", usecase.NextSaleID(now, taken))
	assert.Equal(t, "V-999999", usecase.NextSaleID(now, nil))
}

func TestGetByID_VentaInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.sales.GetByID(context.Background(), "V-000001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ── Carrito ─────────────────────────────────────────────────────────────────

func TestCart_AgregarRespetaStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Camel tiene 4 unidades: la quinta no entra.
	var cart *dto.CartResponse
	var err error
	for i := 0; i < 5; i++ {
		cart, err = f.sales.AddToCart(ctx, "4")
		require.NoError(t, err)
	}
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	_, err = f.sales.AddToCart(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCart_SinStockDevuelveErrOutOfStock(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.sales.Complete(ctx, "u1", dto.CompleteSaleRequest{Items: []dto.SaleItemDTO{line("4", 4, "5.00")}})
	require.NoError(t, err)

	_, err = f.sales.AddToCart(ctx, "4")
	assert.ErrorIs(t, err, domain.ErrOutOfStock)
}

func TestCart_ActualizarCantidadYCheckout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sales.AddToCart(ctx, "3")
	require.NoError(t, err)
	cart, err := f.sales.UpdateCartItem(ctx, "3", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.True(t, cart.Total.Equal(decimal.RequireFromString("27.5")))

	// Bajar de cero elimina la línea.
	cart, err = f.sales.UpdateCartItem(ctx, "3", -10)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	_, err = f.sales.Checkout(ctx, "u1", dto.CheckoutRequest{})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = f.sales.AddToCart(ctx, "3")
	require.NoError(t, err)
	sale, err := f.sales.Checkout(ctx, "u1", dto.CheckoutRequest{PaymentMethod: entity.PaymentTransfer})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentTransfer, sale.PaymentMethod)
	assert.Equal(t, 84, f.product(t, "3").Stock)

	cart, err = f.sales.Cart(ctx)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCart_CheckoutFallidoConservaCarrito(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.sales.AddToCart(ctx, "5")
	require.NoError(t, err)
	f.kv.setFail(true)

	_, err = f.sales.Checkout(ctx, "u1", dto.CheckoutRequest{})
	require.Error(t, err)

	cart, err := f.sales.Cart(ctx)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 1)
}
