package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

func product(id string, stock int) entity.Product {
	return entity.Product{ID: id, Name: "P" + id, Stock: stock, Price: decimal.RequireFromString("2.50")}
}

func TestCart_AddNoSuperaStock(t *testing.T) {
	var c entity.Cart
	p := product("1", 2)

	assert.True(t, c.Add(p))
	assert.True(t, c.Add(p))
	assert.True(t, c.Add(p))
	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
	assert.Equal(t, "5", c.Total().String())

	assert.False(t, c.Add(product("2", 0)))
	assert.Len(t, c.Items, 1)
}

func TestCart_UpdateQuantity(t *testing.T) {
	var c entity.Cart
	p := product("1", 3)
	c.Add(p)

	c.UpdateQuantity("1", 2, &p)
	assert.Equal(t, 3, c.Items[0].Quantity)

	c.UpdateQuantity("1", 1, &p)
	assert.Equal(t, 3, c.Items[0].Quantity, "no supera el stock")

	c.UpdateQuantity("x", 1, nil)
	assert.Len(t, c.Items, 1)

	c.UpdateQuantity("1", -10, &p)
	assert.True(t, c.IsEmpty())
}

func TestSession_Expired(t *testing.T) {
	login := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	s := entity.Session{LoginTime: login}

	assert.False(t, s.Expired(login.Add(8*time.Hour), 8*time.Hour))
	assert.True(t, s.Expired(login.Add(8*time.Hour+time.Second), 8*time.Hour))
}

func TestProduct_StockBajoYValor(t *testing.T) {
	p := entity.Product{Stock: 4, MinStock: 15, Price: decimal.RequireFromString("5.00")}
	assert.True(t, p.IsLowStock())
	assert.Equal(t, "20", p.StockValue().String())

	p.Stock = 15
	assert.False(t, p.IsLowStock())
}
