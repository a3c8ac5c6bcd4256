package ports

import "github.com/jhoicas/gestion-pro/internal/domain/entity"

// ReceiptGenerator genera el comprobante PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(sale entity.Sale, shopName string) ([]byte, error)
}
