package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

const reportTopProducts = 5 // productos en el ranking por unidades

// ReportsUseCase ventas por categoría, canal y método de pago, más el top de productos.
type ReportsUseCase struct {
	store *state.Store
}

// NewReportsUseCase construye el caso de uso.
func NewReportsUseCase(store *state.Store) *ReportsUseCase {
	return &ReportsUseCase{store: store}
}

// GetReports toma una foto del estado y calcula las cuatro agregaciones en paralelo.
func (uc *ReportsUseCase) GetReports(ctx context.Context) (*dto.ReportsResponse, error) {
	var (
		products []entity.Product
		sales    []entity.Sale
	)
	err := uc.store.Do(ctx, func(d *state.Data) error {
		products = state.CloneProducts(d.Products)
		for _, s := range d.Sales {
			if s.IsCompleted() {
				s.Items = append([]entity.SaleItem(nil), s.Items...)
				sales = append(sales, s)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reportes: leer estado: %w", err)
	}
	return BuildReports(products, sales), nil
}

// BuildReports agrega sobre ventas ya filtradas como completadas.
func BuildReports(products []entity.Product, completed []entity.Sale) *dto.ReportsResponse {
	catCh := make(chan []dto.AmountByKeyDTO, 1)
	originCh := make(chan []dto.AmountByKeyDTO, 1)
	payCh := make(chan []dto.AmountByKeyDTO, 1)
	topCh := make(chan []dto.TopProductDTO, 1)

	go func() { catCh <- byCategory(products, completed) }()
	go func() {
		originCh <- sumBy(completed, func(s entity.Sale) string { return s.Origin })
	}()
	go func() {
		payCh <- sumBy(completed, func(s entity.Sale) string { return s.PaymentMethod })
	}()
	go func() { topCh <- topProducts(products, completed) }()

	revenue := decimal.Zero
	for _, s := range completed {
		revenue = revenue.Add(s.Total)
	}

	return &dto.ReportsResponse{
		ByCategory:      <-catCh,
		ByOrigin:        <-originCh,
		ByPaymentMethod: <-payCh,
		TopProducts:     <-topCh,
		CompletedSales:  len(completed),
		Revenue:         revenue.Round(2),
	}
}

// byCategory suma precio×cantidad por categoría del producto; sin producto = "Otros".
func byCategory(products []entity.Product, sales []entity.Sale) []dto.AmountByKeyDTO {
	category := make(map[string]string, len(products))
	for _, p := range products {
		category[p.ID] = p.Category
	}
	acc := newAccumulator()
	for _, s := range sales {
		for _, it := range s.Items {
			cat := category[it.ProductID]
			if cat == "" {
				cat = entity.CategoryOther
			}
			acc.add(cat, it.Subtotal())
		}
	}
	return acc.result()
}

func sumBy(sales []entity.Sale, key func(entity.Sale) string) []dto.AmountByKeyDTO {
	acc := newAccumulator()
	for _, s := range sales {
		acc.add(key(s), s.Total)
	}
	return acc.result()
}

// topProducts ranking por unidades vendidas (todas las líneas de cada venta).
// Sin ventas completadas devuelve lista vacía.
func topProducts(products []entity.Product, sales []entity.Sale) []dto.TopProductDTO {
	out := make([]dto.TopProductDTO, 0, reportTopProducts)
	if len(sales) == 0 {
		return out
	}
	qty := make(map[string]int)
	for _, s := range sales {
		for _, it := range s.Items {
			qty[it.ProductID] += it.Quantity
		}
	}
	ranked := make([]dto.TopProductDTO, 0, len(products))
	for _, p := range products {
		ranked = append(ranked, dto.TopProductDTO{ProductID: p.ID, Code: p.Code, Name: p.Name, Quantity: qty[p.ID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quantity > ranked[j].Quantity })
	if len(ranked) > reportTopProducts {
		ranked = ranked[:reportTopProducts]
	}
	return append(out, ranked...)
}

// accumulator conserva el orden de primera aparición de cada clave.
type accumulator struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newAccumulator() *accumulator {
	return &accumulator{totals: make(map[string]decimal.Decimal)}
}

func (a *accumulator) add(key string, v decimal.Decimal) {
	cur, ok := a.totals[key]
	if !ok {
		a.order = append(a.order, key)
	}
	a.totals[key] = cur.Add(v)
}

func (a *accumulator) result() []dto.AmountByKeyDTO {
	out := make([]dto.AmountByKeyDTO, 0, len(a.order))
	for _, k := range a.order {
		out = append(out, dto.AmountByKeyDTO{Name: k, Value: a.totals[k].Round(2)})
	}
	return out
}
