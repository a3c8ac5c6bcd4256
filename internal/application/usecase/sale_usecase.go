package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

const saleIDModulo = 1_000_000

// SaleUseCase registra ventas (descontando stock) y administra el carrito en armado.
type SaleUseCase struct {
	store    *state.Store
	repo     repository.SaleRepository
	activity *ActivityUseCase
	metrics  ports.MetricsRecorder
	now      func() time.Time
	log      *logger.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	store *state.Store,
	repo repository.SaleRepository,
	activity *ActivityUseCase,
	metrics ports.MetricsRecorder,
	now func() time.Time,
	log *logger.Logger,
) *SaleUseCase {
	return &SaleUseCase{store: store, repo: repo, activity: activity, metrics: metrics, now: now, log: log}
}

// saleDraft datos de la venta antes de asignar ID y fecha.
type saleDraft struct {
	items         []entity.SaleItem
	total         *decimal.Decimal
	paymentMethod string
	origin        string
	client        string
	observations  string
}

// Complete registra una venta: arma la venta, descuenta stock de cada línea cuyo
// producto exista y guarda catálogo e historial en una sola escritura atómica.
// No se comprueba que alcance el stock: un carrito desactualizado puede dejarlo negativo.
func (uc *SaleUseCase) Complete(ctx context.Context, sellerID string, in dto.CompleteSaleRequest) (*dto.SaleResponse, error) {
	draft := saleDraft{
		total:         in.Total,
		paymentMethod: in.PaymentMethod,
		origin:        in.Origin,
		client:        in.Client,
		observations:  in.Observations,
	}
	for _, it := range in.Items {
		draft.items = append(draft.items, entity.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
		})
	}

	var sale entity.Sale
	err := uc.store.Do(ctx, func(d *state.Data) error {
		var err error
		sale, err = uc.completeLocked(ctx, d, sellerID, draft)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.afterSale(ctx, sale), nil
}

// Checkout convierte el carrito en venta (total calculado) y lo vacía.
func (uc *SaleUseCase) Checkout(ctx context.Context, sellerID string, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	var sale entity.Sale
	err := uc.store.Do(ctx, func(d *state.Data) error {
		if d.Cart.IsEmpty() {
			return domain.ErrEmptyCart
		}
		total := d.Cart.Total()
		var err error
		sale, err = uc.completeLocked(ctx, d, sellerID, saleDraft{
			items:         append([]entity.SaleItem(nil), d.Cart.Items...),
			total:         &total,
			paymentMethod: in.PaymentMethod,
			origin:        in.Origin,
			client:        in.Client,
			observations:  in.Observations,
		})
		if err != nil {
			return err
		}
		d.Cart = entity.Cart{}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.afterSale(ctx, sale), nil
}

func (uc *SaleUseCase) afterSale(ctx context.Context, sale entity.Sale) *dto.SaleResponse {
	uc.metrics.SaleCompleted(sale.Total)
	uc.activity.Record(ctx, sale.SellerID, entity.ActionSaleCompleted,
		fmt.Sprintf("%s por %s", sale.ID, sale.Total.StringFixed(2)))
	resp := dto.NewSaleResponse(sale)
	return &resp
}

// completeLocked corre dentro del escritor. Si la persistencia falla, d queda intacto.
func (uc *SaleUseCase) completeLocked(ctx context.Context, d *state.Data, sellerID string, in saleDraft) (entity.Sale, error) {
	if len(in.items) == 0 {
		return entity.Sale{}, domain.ErrEmptyCart
	}
	now := uc.now()

	items := make([]entity.SaleItem, 0, len(in.items))
	for _, it := range in.items {
		if strings.TrimSpace(it.ProductID) == "" || it.Quantity < 1 {
			return entity.Sale{}, fmt.Errorf("%w: cada línea requiere producto y cantidad >= 1", domain.ErrInvalidInput)
		}
		if idx := state.FindProduct(d.Products, it.ProductID); idx >= 0 {
			p := d.Products[idx]
			if it.Name == "" {
				it.Name = p.Name
			}
			if it.Price.IsZero() {
				it.Price = p.Price
			}
		}
		items = append(items, it)
	}

	origin := in.origin
	if origin == "" {
		origin = entity.OriginTienda
	}
	if !entity.IsValidOrigin(origin) {
		return entity.Sale{}, fmt.Errorf("%w: origen %q", domain.ErrInvalidInput, origin)
	}

	payment := strings.TrimSpace(in.paymentMethod)
	if payment == "" {
		payment = entity.PaymentCash
		if len(d.PaymentMethods) > 0 {
			payment = d.PaymentMethods[0]
		}
	}

	total := entity.ItemsTotal(items)
	if in.total != nil {
		total = *in.total
	}

	if sellerID == "" {
		sellerID = entity.SellerSystem
	}

	sale := entity.Sale{
		ID:            NextSaleID(now, d.Sales),
		Date:          now,
		Items:         items,
		Total:         total,
		PaymentMethod: payment,
		Origin:        origin,
		Client:        strings.TrimSpace(in.client),
		Observations:  strings.TrimSpace(in.observations),
		Status:        entity.SaleStatusCompleted,
		SellerID:      sellerID,
	}

	products := state.CloneProducts(d.Products)
	for _, it := range items {
		idx := state.FindProduct(products, it.ProductID)
		if idx < 0 {
			continue
		}
		products[idx].Stock -= it.Quantity
		products[idx].LastUpdate = now
		if products[idx].Stock < 0 {
			uc.log.Warn().
				Str("product_id", it.ProductID).
				Int("stock", products[idx].Stock).
				Str("sale_id", sale.ID).
				Msg("stock negativo tras la venta")
		}
	}

	sales := make([]entity.Sale, 0, len(d.Sales)+1)
	sales = append(sales, sale)
	sales = append(sales, d.Sales...)

	if err := uc.repo.SaveSaleCompletion(ctx, products, sales); err != nil {
		return entity.Sale{}, fmt.Errorf("guardar venta: %w", err)
	}
	d.Products = products
	d.Sales = sales
	return sale, nil
}

// NextSaleID "V-" + últimos 6 dígitos del timestamp en milisegundos. Si ya existe en
// el historial se avanza el sufijo hasta encontrar uno libre.
func NextSaleID(now time.Time, sales []entity.Sale) string {
	used := make(map[string]struct{}, len(sales))
	for _, s := range sales {
		used[s.ID] = struct{}{}
	}
	suffix := now.UnixMilli() % saleIDModulo
	for i := 0; i < saleIDModulo; i++ {
		id := fmt.Sprintf("V-%06d", suffix)
		if _, taken := used[id]; !taken {
			return id
		}
		suffix = (suffix + 1) % saleIDModulo
	}
	return fmt.Sprintf("V-%06d", suffix)
}

// History devuelve el historial, más reciente primero.
func (uc *SaleUseCase) History(ctx context.Context) (*dto.SaleListResponse, error) {
	var sales []entity.Sale
	err := uc.store.Do(ctx, func(d *state.Data) error {
		sales = state.CloneSales(d.Sales)
		return nil
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, dto.NewSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}, nil
}

// GetByID busca una venta del historial.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var sale *entity.Sale
	err := uc.store.Do(ctx, func(d *state.Data) error {
		for _, s := range d.Sales {
			if s.ID == id {
				s.Items = append([]entity.SaleItem(nil), s.Items...)
				sale = &s
				return nil
			}
		}
		return domain.ErrNotFound
	})
	return sale, err
}

// ── Carrito ─────────────────────────────────────────────────────────────────

// Cart devuelve el carrito actual.
func (uc *SaleUseCase) Cart(ctx context.Context) (*dto.CartResponse, error) {
	return uc.cartDo(ctx, func(*state.Data) error { return nil })
}

// AddToCart agrega una unidad del producto. Sin stock devuelve ErrOutOfStock; en el
// límite de stock el carrito no cambia.
func (uc *SaleUseCase) AddToCart(ctx context.Context, productID string) (*dto.CartResponse, error) {
	return uc.cartDo(ctx, func(d *state.Data) error {
		idx := state.FindProduct(d.Products, productID)
		if idx < 0 {
			return domain.ErrNotFound
		}
		if !d.Cart.Add(d.Products[idx]) {
			return domain.ErrOutOfStock
		}
		return nil
	})
}

// UpdateCartItem suma delta a la línea; una línea inexistente se ignora.
func (uc *SaleUseCase) UpdateCartItem(ctx context.Context, productID string, delta int) (*dto.CartResponse, error) {
	return uc.cartDo(ctx, func(d *state.Data) error {
		var product *entity.Product
		if idx := state.FindProduct(d.Products, productID); idx >= 0 {
			p := d.Products[idx]
			product = &p
		}
		d.Cart.UpdateQuantity(productID, delta, product)
		return nil
	})
}

// ClearCart vacía el carrito.
func (uc *SaleUseCase) ClearCart(ctx context.Context) (*dto.CartResponse, error) {
	return uc.cartDo(ctx, func(d *state.Data) error {
		d.Cart = entity.Cart{}
		return nil
	})
}

func (uc *SaleUseCase) cartDo(ctx context.Context, fn func(*state.Data) error) (*dto.CartResponse, error) {
	var resp dto.CartResponse
	err := uc.store.Do(ctx, func(d *state.Data) error {
		if err := fn(d); err != nil {
			return err
		}
		resp = dto.NewCartResponse(d.Cart)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
