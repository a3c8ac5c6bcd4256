package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// Cabeceras de las exportaciones CSV.
var (
	SalesCSVHeader     = []string{"ID", "Total"}
	InventoryCSVHeader = []string{"Código", "Nombre", "Categoría", "Stock", "Mínimo", "Precio", "Valor Total"}
)

// ExportUseCase genera los CSV de ventas e inventario y, si hay destino
// configurado, los publica.
type ExportUseCase struct {
	store    *state.Store
	uploader ports.ExportUploader // nil = solo descarga
	now      func() time.Time
}

// NewExportUseCase construye el caso de uso. uploader puede ser nil.
func NewExportUseCase(store *state.Store, uploader ports.ExportUploader, now func() time.Time) *ExportUseCase {
	return &ExportUseCase{store: store, uploader: uploader, now: now}
}

// SalesCSV "ID,Total" y una fila por venta del historial. Sin ventas: solo cabecera.
func (uc *ExportUseCase) SalesCSV(ctx context.Context) ([]byte, int, error) {
	var sales []entity.Sale
	err := uc.store.Do(ctx, func(d *state.Data) error {
		sales = state.CloneSales(d.Sales)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return BuildSalesCSV(sales), len(sales), nil
}

// InventoryCSV exporta la lista de productos filtrada igual que la vista de inventario.
func (uc *ExportUseCase) InventoryCSV(ctx context.Context, f dto.InventoryFilter) ([]byte, int, error) {
	var products []entity.Product
	err := uc.store.Do(ctx, func(d *state.Data) error {
		products = FilterProducts(d.Products, f)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return BuildInventoryCSV(products), len(products), nil
}

// Publish sube el archivo al destino configurado. Sin destino devuelve el resultado
// sin ubicación.
func (uc *ExportUseCase) Publish(ctx context.Context, prefix string, data []byte, rows int) (*dto.ExportResult, error) {
	name := uc.FileName(prefix)
	res := &dto.ExportResult{FileName: name, Rows: rows}
	if uc.uploader == nil {
		return res, nil
	}
	loc, err := uc.uploader.Upload(ctx, name, "text/csv; charset=utf-8", data)
	if err != nil {
		return nil, fmt.Errorf("publicar exportación: %w", err)
	}
	res.Location = loc
	return res, nil
}

// FileName nombre de archivo con marca de tiempo UTC: prefijo-AAAAMMDD-HHMMSS.csv.
func (uc *ExportUseCase) FileName(prefix string) string {
	return fmt.Sprintf("%s-%s.csv", prefix, uc.now().UTC().Format("20060102-150405"))
}

// BuildSalesCSV une los campos con comas, sin comillas.
func BuildSalesCSV(sales []entity.Sale) []byte {
	rows := make([][]string, 0, len(sales))
	for _, s := range sales {
		rows = append(rows, []string{s.ID, s.Total.String()})
	}
	return joinCSV(SalesCSVHeader, rows)
}

// BuildInventoryCSV una fila por producto con su valor de stock.
func BuildInventoryCSV(products []entity.Product) []byte {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Code,
			p.Name,
			p.Category,
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
			p.Price.String(),
			p.StockValue().String(),
		})
	}
	return joinCSV(InventoryCSVHeader, rows)
}

func joinCSV(header []string, rows [][]string) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))
	for _, r := range rows {
		b.WriteByte('\n')
		b.WriteString(strings.Join(r, ","))
	}
	return []byte(b.String())
}
