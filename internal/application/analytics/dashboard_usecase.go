// Package analytics contiene las proyecciones de lectura: panel de control y reportes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// Etiquetas del gráfico del panel.
const (
	ChartTotalStock = "Stock Total"
	ChartLowStock   = "Bajo Stock"
	ChartSalesToday = "Ventas Hoy"
)

// DashboardUseCase resume stock, valor del inventario y ventas del día.
type DashboardUseCase struct {
	store *state.Store
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store *state.Store, now func() time.Time) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: now}
}

// GetSummary construye el DashboardSummaryDTO. "Hoy" es la fecha UTC actual y solo
// cuentan las ventas completadas.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	var (
		products []entity.Product
		sales    []entity.Sale
	)
	err := uc.store.Do(ctx, func(d *state.Data) error {
		products = state.CloneProducts(d.Products)
		sales = state.CloneSales(d.Sales)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer estado: %w", err)
	}
	return Summarize(products, sales, uc.now()), nil
}

// Summarize calcula el resumen sobre una foto del estado.
func Summarize(products []entity.Product, sales []entity.Sale, now time.Time) *dto.DashboardSummaryDTO {
	totalStock := 0
	value := decimal.Zero
	low := make([]dto.ProductResponse, 0)
	for _, p := range products {
		totalStock += p.Stock
		value = value.Add(p.StockValue())
		if p.IsLowStock() {
			low = append(low, dto.NewProductResponse(p))
		}
	}

	y, m, d := now.UTC().Date()
	count := 0
	amount := decimal.Zero
	for _, s := range sales {
		if !s.IsCompleted() {
			continue
		}
		sy, sm, sd := s.Date.UTC().Date()
		if sy == y && sm == m && sd == d {
			count++
			amount = amount.Add(s.Total)
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalStock:       totalStock,
		InventoryValue:   value.Round(2),
		SalesTodayCount:  count,
		SalesTodayAmount: amount.Round(2),
		LowStock:         low,
		Chart: []dto.ChartPointDTO{
			{Name: ChartTotalStock, Value: decimal.NewFromInt(int64(totalStock))},
			{Name: ChartLowStock, Value: decimal.NewFromInt(int64(len(low)))},
			{Name: ChartSalesToday, Value: decimal.NewFromInt(int64(count))},
		},
		DateLabel: monthLabel(now),
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
