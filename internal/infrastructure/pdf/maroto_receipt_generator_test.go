package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

func TestGenerateReceipt(t *testing.T) {
	sale := entity.Sale{
		ID:   "V-123456",
		Date: time.Date(2026, 3, 1, 15, 4, 0, 0, time.UTC),
		Items: []entity.SaleItem{
			{ProductID: "4", Name: "Camel (Unidad)", Quantity: 3, Price: decimal.RequireFromString("5.00")},
		},
		Total:         decimal.RequireFromString("15.00"),
		PaymentMethod: entity.PaymentCash,
		Origin:        entity.OriginTienda,
		Observations:  "Entrega inmediata",
		Status:        entity.SaleStatusCompleted,
		SellerID:      "u2",
	}

	out, err := NewMarotoReceiptGenerator().GenerateReceipt(sale, "Gestión Pro")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
