package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemDTO línea de venta.
type SaleItemDTO struct {
	ProductID string          `json:"product_id" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CompleteSaleRequest entrada para registrar una venta.
// Total nil = se calcula con las líneas; si viene, se respeta sin revalidar.
type CompleteSaleRequest struct {
	Items         []SaleItemDTO    `json:"items" validate:"required,min=1"`
	Total         *decimal.Decimal `json:"total"`
	PaymentMethod string           `json:"payment_method"`
	Origin        string           `json:"origin"`
	Client        string           `json:"client"`
	Observations  string           `json:"observations"`
}

// CheckoutRequest datos de cierre del carrito.
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	Origin        string `json:"origin"`
	Client        string `json:"client"`
	Observations  string `json:"observations"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID                 string          `json:"id"`
	Date               time.Time       `json:"date"`
	Items              []SaleItemDTO   `json:"items"`
	Total              decimal.Decimal `json:"total"`
	PaymentMethod      string          `json:"payment_method"`
	Origin             string          `json:"origin"`
	Client             string          `json:"client,omitempty"`
	Observations       string          `json:"observations,omitempty"`
	Status             string          `json:"status"`
	CancellationReason string          `json:"cancellation_reason,omitempty"`
	SellerID           string          `json:"seller_id"`
}

// SaleListResponse historial de ventas (más reciente primero).
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}

// CartResponse carrito en armado.
type CartResponse struct {
	Items []SaleItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

// AddToCartRequest agrega una unidad de un producto.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// UpdateCartItemRequest suma delta a la cantidad de una línea.
type UpdateCartItemRequest struct {
	Delta int `json:"delta"`
}
