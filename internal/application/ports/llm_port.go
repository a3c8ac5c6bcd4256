package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato, no la implementación concreta.
type LLMService interface {
	// GenerateJSON envía el prompt pidiendo respuesta JSON y devuelve el texto crudo
	// del modelo (puede venir vacío). El contexto debe llevar un timeout.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
}
