package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
// Code es el código legible (no se garantiza único). Stock puede quedar negativo:
// la suficiencia solo se comprueba al armar el carrito.
type Product struct {
	ID         string          `json:"id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Stock      int             `json:"stock"`
	MinStock   int             `json:"minStock"`
	Price      decimal.Decimal `json:"price"`
	LastUpdate time.Time       `json:"lastUpdate"`
}

// IsLowStock indica si el stock está por debajo del mínimo configurado.
func (p Product) IsLowStock() bool {
	return p.Stock < p.MinStock
}

// StockValue devuelve stock × precio.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
}

// InitialProducts catálogo con el que arranca una tienda vacía (o tras borrar los datos).
func InitialProducts(now time.Time) []Product {
	p := func(id, code, name, category string, stock, minStock int, price string) Product {
		return Product{
			ID: id, Code: code, Name: name, Category: category,
			Stock: stock, MinStock: minStock,
			Price: decimal.RequireFromString(price), LastUpdate: now,
		}
	}
	return []Product{
		p("1", "C001", "Marlboro Gold (Caja x10)", CategoryCigarrosCaja, 25, 5, "45.00"),
		p("2", "C002", "Lucky Strike (Caja x10)", CategoryCigarrosCaja, 15, 5, "42.50"),
		p("3", "U001", "Marlboro Red (Unidad)", CategoryCigarrosUnidad, 85, 20, "5.50"),
		p("4", "U002", "Camel (Unidad)", CategoryCigarrosUnidad, 4, 15, "5.00"),
		p("5", "A001", "Johnnie Walker Black Label 750ml", CategoryAlcohol, 12, 3, "38.00"),
		p("6", "A002", "Vodka Absolut 1L", CategoryAlcohol, 8, 2, "22.00"),
		p("7", "B001", "Corona Extra 355ml (Pack 6)", CategoryCerveza, 30, 10, "11.50"),
		p("8", "B002", "Heineken Lata 473ml", CategoryCerveza, 120, 24, "2.25"),
	}
}
