package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes (canales) de venta.
const (
	OriginTienda   = "Tienda física"
	OriginWhatsApp = "WhatsApp"
	OriginTelefono = "Teléfono"
	OriginOnline   = "Pedido online"
)

// Origins lista cerrada de canales de venta.
var Origins = []string{OriginTienda, OriginWhatsApp, OriginTelefono, OriginOnline}

// IsValidOrigin reporta si o es uno de los canales conocidos.
func IsValidOrigin(o string) bool {
	for _, v := range Origins {
		if v == o {
			return true
		}
	}
	return false
}

// Estados de venta. La anulación está declarada pero no existe flujo que la aplique.
const (
	SaleStatusCompleted = "completada"
	SaleStatusVoided    = "anulada"
)

// SellerSystem vendedor centinela cuando no hay sesión activa.
const SellerSystem = "sys"

// SaleItem línea de venta. Name y Price se copian del producto al vender para que el
// historial no cambie si el producto se edita o elimina después.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Subtotal precio × cantidad.
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale venta registrada.
type Sale struct {
	ID                 string          `json:"id"`
	Date               time.Time       `json:"date"`
	Items              []SaleItem      `json:"items"`
	Total              decimal.Decimal `json:"total"`
	PaymentMethod      string          `json:"paymentMethod"`
	Origin             string          `json:"origin"`
	Client             string          `json:"client,omitempty"`
	Observations       string          `json:"observations,omitempty"`
	Status             string          `json:"status"`
	CancellationReason string          `json:"cancellationReason,omitempty"`
	SellerID           string          `json:"sellerId"`
}

// IsCompleted true si la venta cuenta para métricas.
func (s Sale) IsCompleted() bool { return s.Status == SaleStatusCompleted }

// ItemsTotal suma los subtotales de las líneas.
func ItemsTotal(items []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}
