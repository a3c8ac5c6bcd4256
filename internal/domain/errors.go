package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrMissingCredentials   = errors.New("por favor, completa todos los campos")
	ErrInvalidCredentials   = errors.New("credenciales incorrectas. verifica tu usuario y contraseña")
	ErrSessionExpired       = errors.New("sesión inexistente o expirada")
	ErrConfirmationRequired = errors.New("la acción requiere confirmación")
	ErrLastPaymentMethod    = errors.New("debe haber al menos un método de pago activo")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrOutOfStock           = errors.New("no hay stock disponible")
	ErrPasswordMismatch     = errors.New("las contraseñas nuevas no coinciden")
	ErrPasswordTooShort     = errors.New("la contraseña debe tener al menos 4 caracteres")
)
