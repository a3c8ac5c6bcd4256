package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest datos editables de un producto (alta y edición).
type ProductRequest struct {
	Code     string          `json:"code" validate:"required"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required"`
	Stock    int             `json:"stock"`
	MinStock int             `json:"min_stock" validate:"min=0"`
	Price    decimal.Decimal `json:"price"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"min_stock"`
	Price      decimal.Decimal `json:"price"`
	StockValue decimal.Decimal `json:"stock_value"`
	LowStock   bool            `json:"low_stock"`
	LastUpdate time.Time       `json:"last_update"`
}

// Filtros de stock del inventario.
const (
	StockFilterAll = "all"
	StockFilterLow = "low"
)

// InventoryFilter filtros de la vista de inventario.
type InventoryFilter struct {
	Search   string `query:"search"`
	Category string `query:"category"` // "All" o vacío = cualquiera
	Stock    string `query:"stock"`    // all | low
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
