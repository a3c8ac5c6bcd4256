package entity

// Métodos de pago incluidos por defecto.
const (
	PaymentCash     = "Efectivo"
	PaymentCard     = "Tarjeta"
	PaymentTransfer = "Transferencia"
)

// DefaultPaymentMethods devuelve una copia de los métodos por defecto.
func DefaultPaymentMethods() []string {
	return []string{PaymentCash, PaymentCard, PaymentTransfer}
}

// IsDefaultPaymentMethod reporta si m es uno de los métodos incluidos.
func IsDefaultPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}
