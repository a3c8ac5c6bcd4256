package ai

import (
	"net/http"
	"time"

	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/pkg/config"
)

// Option ajusta un adaptador LLM (URL base y cliente HTTP; útil en tests).
type Option func(*clientOptions)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
}

// WithBaseURL reemplaza el endpoint del proveedor.
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

func buildOptions(defaultURL string, netTimeout time.Duration, opts []Option) clientOptions {
	o := clientOptions{
		baseURL:    defaultURL,
		httpClient: &http.Client{Timeout: netTimeout},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// NewFromConfig elige el adaptador según AI_PROVIDER. Devuelve nil si falta la API
// key: el caso de uso responde entonces con las recomendaciones por defecto.
func NewFromConfig(cfg config.AIConfig) ports.LLMService {
	switch cfg.Provider {
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil
		}
		return NewAnthropicService(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	default:
		if cfg.GeminiAPIKey == "" {
			return nil
		}
		return NewGeminiService(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
}
