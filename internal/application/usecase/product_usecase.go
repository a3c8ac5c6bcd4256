package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
	"github.com/jhoicas/gestion-pro/pkg/format"
)

// MaxSearchResults resultados de la búsqueda rápida de la pantalla de venta.
const MaxSearchResults = 5

// ProductUseCase alta, edición, baja y consultas del catálogo.
// Cada mutación reemplaza la colección completa y la persiste; gana la última escritura.
type ProductUseCase struct {
	store    *state.Store
	repo     repository.ProductRepository
	activity *ActivityUseCase
	now      func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store *state.Store, repo repository.ProductRepository, activity *ActivityUseCase, now func() time.Time) *ProductUseCase {
	return &ProductUseCase{store: store, repo: repo, activity: activity, now: now}
}

func validateProduct(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Code) == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return fmt.Errorf("%w: código, nombre y categoría son obligatorios", domain.ErrInvalidInput)
	}
	if in.MinStock < 0 {
		return fmt.Errorf("%w: el stock mínimo no puede ser negativo", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

// Create agrega un producto con ID aleatorio y marca de tiempo actual.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:         uuid.NewString(),
		Code:       strings.TrimSpace(in.Code),
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Price:      in.Price,
		LastUpdate: uc.now(),
	}
	err := uc.store.Do(ctx, func(d *state.Data) error {
		updated := append(state.CloneProducts(d.Products), product)
		if err := uc.repo.SaveProducts(ctx, updated); err != nil {
			return fmt.Errorf("guardar productos: %w", err)
		}
		d.Products = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, userID, entity.ActionProductCreated, product.Name)
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// Update reemplaza el producto con el ID dado por los datos recibidos y reestampa lastUpdate.
func (uc *ProductUseCase) Update(ctx context.Context, userID, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := entity.Product{
		ID:         id,
		Code:       strings.TrimSpace(in.Code),
		Name:       strings.TrimSpace(in.Name),
		Category:   strings.TrimSpace(in.Category),
		Stock:      in.Stock,
		MinStock:   in.MinStock,
		Price:      in.Price,
		LastUpdate: uc.now(),
	}
	err := uc.store.Do(ctx, func(d *state.Data) error {
		idx := state.FindProduct(d.Products, id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		updated := state.CloneProducts(d.Products)
		updated[idx] = product
		if err := uc.repo.SaveProducts(ctx, updated); err != nil {
			return fmt.Errorf("guardar productos: %w", err)
		}
		d.Products = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, userID, entity.ActionProductUpdated, product.Name)
	resp := dto.NewProductResponse(product)
	return &resp, nil
}

// Delete elimina el producto. Exige confirmación explícita; las ventas que lo
// referencian se conservan intactas.
func (uc *ProductUseCase) Delete(ctx context.Context, userID, id string, confirm bool) error {
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	var name string
	err := uc.store.Do(ctx, func(d *state.Data) error {
		idx := state.FindProduct(d.Products, id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		name = d.Products[idx].Name
		updated := make([]entity.Product, 0, len(d.Products)-1)
		updated = append(updated, d.Products[:idx]...)
		updated = append(updated, d.Products[idx+1:]...)
		if err := uc.repo.SaveProducts(ctx, updated); err != nil {
			return fmt.Errorf("guardar productos: %w", err)
		}
		d.Products = updated
		return nil
	})
	if err != nil {
		return err
	}
	uc.activity.Record(ctx, userID, entity.ActionProductDeleted, name)
	return nil
}

// GetByID obtiene un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var resp *dto.ProductResponse
	err := uc.store.Do(ctx, func(d *state.Data) error {
		idx := state.FindProduct(d.Products, id)
		if idx < 0 {
			return domain.ErrNotFound
		}
		r := dto.NewProductResponse(d.Products[idx])
		resp = &r
		return nil
	})
	return resp, err
}

// List devuelve el inventario filtrado por texto, categoría y nivel de stock.
func (uc *ProductUseCase) List(ctx context.Context, f dto.InventoryFilter) (*dto.ProductListResponse, error) {
	products, err := uc.Filter(ctx, f)
	if err != nil {
		return nil, err
	}
	list := dto.NewProductList(products)
	return &list, nil
}

// Filter aplica los filtros del inventario y devuelve las entidades.
func (uc *ProductUseCase) Filter(ctx context.Context, f dto.InventoryFilter) ([]entity.Product, error) {
	if f.Stock != "" && f.Stock != dto.StockFilterAll && f.Stock != dto.StockFilterLow {
		return nil, fmt.Errorf("%w: filtro de stock %q", domain.ErrInvalidInput, f.Stock)
	}
	var out []entity.Product
	err := uc.store.Do(ctx, func(d *state.Data) error {
		out = FilterProducts(d.Products, f)
		return nil
	})
	return out, err
}

// Search búsqueda rápida por nombre o código; sin término no devuelve nada.
func (uc *ProductUseCase) Search(ctx context.Context, term string) (*dto.ProductListResponse, error) {
	var out []entity.Product
	if term != "" {
		err := uc.store.Do(ctx, func(d *state.Data) error {
			for _, p := range d.Products {
				if matchesTerm(p, term) {
					out = append(out, p)
					if len(out) == MaxSearchResults {
						break
					}
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	list := dto.NewProductList(out)
	return &list, nil
}

// FilterProducts devuelve una copia con los productos que cumplen todos los filtros.
func FilterProducts(products []entity.Product, f dto.InventoryFilter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if !matchesTerm(p, f.Search) {
			continue
		}
		if f.Category != "" && f.Category != entity.CategoryAll && p.Category != f.Category {
			continue
		}
		if f.Stock == dto.StockFilterLow && !p.IsLowStock() {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p entity.Product, term string) bool {
	return term == "" || format.ContainsFold(p.Name, term) || format.ContainsFold(p.Code, term)
}
