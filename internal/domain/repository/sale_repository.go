package repository

import (
	"context"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// SaleRepository puerto para el historial de ventas (más reciente primero).
type SaleRepository interface {
	GetSales(ctx context.Context) ([]entity.Sale, error)
	SaveSales(ctx context.Context, sales []entity.Sale) error
	// SaveSaleCompletion guarda catálogo e historial en una sola escritura atómica.
	SaveSaleCompletion(ctx context.Context, products []entity.Product, sales []entity.Sale) error
}
