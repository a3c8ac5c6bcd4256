package entity

// Categorías ofrecidas por el formulario de productos. El dominio no las valida:
// Product.Category es texto libre.
const (
	CategoryCigarrosCaja   = "Cigarros por Caja"
	CategoryCigarrosUnidad = "Cigarros por Unidad"
	CategoryAlcohol        = "Alcohol"
	CategoryCerveza        = "Cerveza"

	// CategoryAll es el valor del filtro que acepta cualquier categoría.
	CategoryAll = "All"
	// CategoryOther agrupa en reportes las ventas de productos ya eliminados.
	CategoryOther = "Otros"
)

// Categories lista ordenada para selectores.
var Categories = []string{
	CategoryCigarrosCaja,
	CategoryCigarrosUnidad,
	CategoryAlcohol,
	CategoryCerveza,
}
