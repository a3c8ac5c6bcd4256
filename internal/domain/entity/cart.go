package entity

import "github.com/shopspring/decimal"

// Cart líneas en armado antes de completar la venta. No se persiste.
// Invariante: toda línea presente tiene Quantity >= 1.
type Cart struct {
	Items []SaleItem `json:"items"`
}

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.Items {
		if it.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add agrega una unidad del producto. Sin stock devuelve false; si la línea ya
// alcanzó el stock disponible no cambia nada.
func (c *Cart) Add(p Product) bool {
	if p.Stock <= 0 {
		return false
	}
	if i := c.indexOf(p.ID); i >= 0 {
		if c.Items[i].Quantity < p.Stock {
			c.Items[i].Quantity++
		}
		return true
	}
	c.Items = append(c.Items, SaleItem{ProductID: p.ID, Name: p.Name, Quantity: 1, Price: p.Price})
	return true
}

// UpdateQuantity suma delta a la línea. La cantidad nunca baja de 0 ni supera stock
// (si se conoce el producto); la línea se elimina al llegar a 0.
func (c *Cart) UpdateQuantity(productID string, delta int, product *Product) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	qty := c.Items[i].Quantity + delta
	if qty < 0 {
		qty = 0
	}
	if product != nil && qty > product.Stock {
		return
	}
	if qty == 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return
	}
	c.Items[i].Quantity = qty
}

// Total suma de subtotales.
func (c *Cart) Total() decimal.Decimal { return ItemsTotal(c.Items) }

// IsEmpty true si no hay líneas.
func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }
