package dto

import (
	"time"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// NewProductResponse mapea la entidad a su salida HTTP.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:         p.ID,
		Code:       p.Code,
		Name:       p.Name,
		Category:   p.Category,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		Price:      p.Price,
		StockValue: p.StockValue(),
		LowStock:   p.IsLowStock(),
		LastUpdate: p.LastUpdate,
	}
}

// NewProductList mapea una lista de productos.
func NewProductList(products []entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, NewProductResponse(p))
	}
	return ProductListResponse{Items: items, Total: len(items)}
}

// NewSaleItems mapea líneas de venta.
func NewSaleItems(items []entity.SaleItem) []SaleItemDTO {
	out := make([]SaleItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, SaleItemDTO{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Subtotal:  it.Subtotal(),
		})
	}
	return out
}

// NewSaleResponse mapea una venta.
func NewSaleResponse(s entity.Sale) SaleResponse {
	return SaleResponse{
		ID:                 s.ID,
		Date:               s.Date,
		Items:              NewSaleItems(s.Items),
		Total:              s.Total,
		PaymentMethod:      s.PaymentMethod,
		Origin:             s.Origin,
		Client:             s.Client,
		Observations:       s.Observations,
		Status:             s.Status,
		CancellationReason: s.CancellationReason,
		SellerID:           s.SellerID,
	}
}

// NewCartResponse mapea el carrito.
func NewCartResponse(c entity.Cart) CartResponse {
	return CartResponse{Items: NewSaleItems(c.Items), Total: c.Total()}
}

// NewUserResponse mapea el usuario de sesión.
func NewUserResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username, Name: u.Name, Role: u.Role}
}

// NewSessionResponse mapea la sesión con su vencimiento.
func NewSessionResponse(s entity.Session, expiry time.Duration) SessionResponse {
	return SessionResponse{
		ID:        s.ID,
		User:      NewUserResponse(s.User),
		LoginTime: s.LoginTime,
		ExpiresAt: s.LoginTime.Add(expiry),
	}
}

// NewActivityLogs mapea la bitácora.
func NewActivityLogs(logs []entity.ActivityLog) []ActivityLogDTO {
	out := make([]ActivityLogDTO, 0, len(logs))
	for _, l := range logs {
		out = append(out, ActivityLogDTO{ID: l.ID, UserID: l.UserID, Action: l.Action, Timestamp: l.Timestamp, Details: l.Details})
	}
	return out
}
