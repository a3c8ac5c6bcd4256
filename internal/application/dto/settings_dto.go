package dto

import "time"

// PaymentMethodsResponse métodos activos, separando los personalizados.
type PaymentMethodsResponse struct {
	Methods []string `json:"methods"`
	Custom  []string `json:"custom"`
}

// PaymentMethodRequest nombre de un método de pago.
type PaymentMethodRequest struct {
	Method string `json:"method" validate:"required"`
}

// ActivityLogDTO entrada de la bitácora.
type ActivityLogDTO struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// ExportResult resultado de una exportación CSV.
type ExportResult struct {
	FileName string `json:"file_name"`
	Rows     int    `json:"rows"`
	Location string `json:"location,omitempty"` // URI en S3 si se subió
}
