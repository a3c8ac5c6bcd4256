package dto

import "github.com/shopspring/decimal"

// AmountByKeyDTO importe acumulado bajo una clave (categoría, canal, método).
type AmountByKeyDTO struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// TopProductDTO producto más vendido por unidades.
type TopProductDTO struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ReportsResponse respuesta de GET /api/reports (solo ventas completadas).
type ReportsResponse struct {
	ByCategory      []AmountByKeyDTO `json:"by_category"`
	ByOrigin        []AmountByKeyDTO `json:"by_origin"`
	ByPaymentMethod []AmountByKeyDTO `json:"by_payment_method"`
	TopProducts     []TopProductDTO  `json:"top_products"`
	CompletedSales  int              `json:"completed_sales"`
	Revenue         decimal.Decimal  `json:"revenue"`
}
