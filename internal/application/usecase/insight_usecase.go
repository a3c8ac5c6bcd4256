package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

// MaxInsightSales ventas recientes que se resumen en el prompt.
const MaxInsightSales = 20

var errInvalidInsightJSON = errors.New("respuesta del modelo no es JSON válido")

// FallbackInsights recomendaciones fijas cuando el proveedor falla.
func FallbackInsights() []dto.InsightDTO {
	return []dto.InsightDTO{
		{Title: "Analiza tu stock", Description: "Revisa los productos con bajo movimiento para realizar promociones."},
		{Title: "Optimiza pedidos", Description: "Los productos estrella parecen estar agotándose rápido."},
	}
}

// InsightUseCase pide al LLM recomendaciones sobre el inventario y las ventas recientes.
// Nunca devuelve error: ante cualquier fallo responde con FallbackInsights.
type InsightUseCase struct {
	store   *state.Store
	llm     ports.LLMService // nil = sin proveedor configurado
	metrics ports.MetricsRecorder
	timeout time.Duration
	log     *logger.Logger
}

// NewInsightUseCase construye el caso de uso. timeout <= 0 usa 20 s.
func NewInsightUseCase(store *state.Store, llm ports.LLMService, metrics ports.MetricsRecorder, timeout time.Duration, log *logger.Logger) *InsightUseCase {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &InsightUseCase{store: store, llm: llm, metrics: metrics, timeout: timeout, log: log}
}

// Insights consulta al proveedor con una foto del estado actual.
func (uc *InsightUseCase) Insights(ctx context.Context) dto.InsightsResponse {
	var prompt string
	err := uc.store.Do(ctx, func(d *state.Data) error {
		prompt = BuildInsightPrompt(d.Products, d.Sales)
		return nil
	})
	if err != nil {
		return uc.fallback(err)
	}
	if uc.llm == nil {
		return uc.fallback(errors.New("proveedor de IA no configurado"))
	}

	// La llamada externa corre fuera del escritor para no bloquear las ventas.
	callCtx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.GenerateJSON(callCtx, prompt)
	if err != nil {
		return uc.fallback(err)
	}
	insights, err := ParseInsights(text)
	if err != nil {
		return uc.fallback(err)
	}
	uc.metrics.InsightRequest(ports.InsightOutcomeOK)
	return dto.InsightsResponse{Insights: insights}
}

func (uc *InsightUseCase) fallback(err error) dto.InsightsResponse {
	uc.log.Warn().Err(err).Msg("insights IA no disponibles, usando recomendaciones por defecto")
	uc.metrics.InsightRequest(ports.InsightOutcomeFallback)
	return dto.InsightsResponse{Insights: FallbackInsights(), Fallback: true}
}

// BuildInsightPrompt resume inventario y hasta MaxInsightSales ventas recientes.
func BuildInsightPrompt(products []entity.Product, sales []entity.Sale) string {
	inv := make([]string, 0, len(products))
	for _, p := range products {
		inv = append(inv, fmt.Sprintf("%s (Stock: %d, Precio: %s)", p.Name, p.Stock, p.Price.String()))
	}
	if len(sales) > MaxInsightSales {
		sales = sales[:MaxInsightSales]
	}
	recent := make([]string, 0, len(sales))
	for _, s := range sales {
		recent = append(recent, fmt.Sprintf("Venta %s: $%s el %s", s.ID, s.Total.String(), s.Date.Format("02/01/2006")))
	}

	return "Actúa como un experto consultor de negocios. Analiza el siguiente inventario y las ventas recientes de mi tienda física.\n" +
		"Proporciona 3 recomendaciones estratégicas cortas y accionables para mejorar mis ingresos o gestión de stock.\n" +
		"Inventario: " + strings.Join(inv, ", ") + "\n" +
		"Ventas recientes: " + strings.Join(recent, ", ") + "\n" +
		`Responde en formato JSON con la siguiente estructura: { "insights": [ { "title": "...", "description": "..." } ] }`
}

// ParseInsights interpreta {"insights":[{title,description}]}.
// Texto vacío equivale a "{}" (lista vacía). JSON inválido es error. JSON válido con
// otra forma devuelve lista vacía.
func ParseInsights(text string) ([]dto.InsightDTO, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		text = "{}"
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: %.200s", errInvalidInsightJSON, text)
	}
	out := []dto.InsightDTO{}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return out, nil
	}
	raw, ok := obj["insights"]
	if !ok {
		return out, nil
	}
	var insights []dto.InsightDTO
	if err := json.Unmarshal(raw, &insights); err != nil || insights == nil {
		return out, nil
	}
	return insights, nil
}
