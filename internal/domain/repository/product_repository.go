package repository

import (
	"context"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// ProductRepository puerto para el catálogo. Se lee y se guarda la colección completa.
type ProductRepository interface {
	GetProducts(ctx context.Context) ([]entity.Product, error)
	SaveProducts(ctx context.Context, products []entity.Product) error
}
