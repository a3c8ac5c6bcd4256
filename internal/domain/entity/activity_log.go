package entity

import "time"

// Acciones registradas en la bitácora.
const (
	ActionLogin           = "login"
	ActionLogout          = "logout"
	ActionProductCreated  = "producto_creado"
	ActionProductUpdated  = "producto_actualizado"
	ActionProductDeleted  = "producto_eliminado"
	ActionSaleCompleted   = "venta_registrada"
	ActionPaymentMethods  = "metodos_pago_actualizados"
	ActionPasswordChanged = "contrasena_actualizada"
	ActionDataCleared     = "datos_borrados"
)

// MaxActivityLogs tamaño máximo de la bitácora; se descartan las entradas más antiguas.
const MaxActivityLogs = 100

// ActivityLog entrada de la bitácora de actividad.
type ActivityLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}
