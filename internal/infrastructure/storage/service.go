// Package storage implementa el adaptador de persistencia: colecciones completas
// serializadas en JSON sobre un KVStore durable y la sesión sobre un KVStore de vida corta.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
)

// DefaultSessionExpiry vida máxima de una sesión.
const DefaultSessionExpiry = 8 * time.Hour

var (
	_ repository.ProductRepository     = (*Service)(nil)
	_ repository.SaleRepository        = (*Service)(nil)
	_ repository.SessionRepository     = (*Service)(nil)
	_ repository.PreferencesRepository = (*Service)(nil)
	_ repository.ActivityLogRepository = (*Service)(nil)
	_ repository.DataResetter          = (*Service)(nil)
)

// Service implementa todos los puertos de persistencia del dominio.
type Service struct {
	durable       repository.KVStore
	session       repository.KVStore
	sessionExpiry time.Duration
	now           func() time.Time
}

// Option ajusta el Service.
type Option func(*Service)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSessionExpiry cambia la vida máxima de la sesión.
func WithSessionExpiry(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.sessionExpiry = d
		}
	}
}

// NewService construye el adaptador. session puede ser el mismo store que durable.
func NewService(durable, session repository.KVStore, opts ...Option) *Service {
	s := &Service{
		durable:       durable,
		session:       session,
		sessionExpiry: DefaultSessionExpiry,
		now:           time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func getJSON[T any](ctx context.Context, kv repository.KVStore, key string) (T, bool, error) {
	var out T
	data, err := kv.Get(ctx, key)
	if err != nil {
		return out, false, fmt.Errorf("leer %s: %w", key, err)
	}
	if data == nil {
		return out, false, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, false, fmt.Errorf("decodificar %s: %w", key, err)
	}
	return out, true, nil
}

func setJSON(ctx context.Context, kv repository.KVStore, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("guardar %s: %w", key, err)
	}
	return nil
}

// ── Catálogo y ventas ─────────────────────────────────────────────────────────

func (s *Service) GetProducts(ctx context.Context) ([]entity.Product, error) {
	list, _, err := getJSON[[]entity.Product](ctx, s.durable, KeyProducts)
	if list == nil {
		list = []entity.Product{}
	}
	return list, err
}

func (s *Service) SaveProducts(ctx context.Context, products []entity.Product) error {
	return setJSON(ctx, s.durable, KeyProducts, products)
}

func (s *Service) GetSales(ctx context.Context) ([]entity.Sale, error) {
	list, _, err := getJSON[[]entity.Sale](ctx, s.durable, KeySales)
	if list == nil {
		list = []entity.Sale{}
	}
	return list, err
}

func (s *Service) SaveSales(ctx context.Context, sales []entity.Sale) error {
	return setJSON(ctx, s.durable, KeySales, sales)
}

// SaveSaleCompletion escribe productos y ventas con un único SetMany.
func (s *Service) SaveSaleCompletion(ctx context.Context, products []entity.Product, sales []entity.Sale) error {
	p, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", KeyProducts, err)
	}
	v, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("codificar %s: %w", KeySales, err)
	}
	if err := s.durable.SetMany(ctx, map[string][]byte{KeyProducts: p, KeySales: v}); err != nil {
		return fmt.Errorf("guardar venta: %w", err)
	}
	return nil
}

// ── Bitácora ──────────────────────────────────────────────────────────────────

func (s *Service) GetLogs(ctx context.Context) ([]entity.ActivityLog, error) {
	list, _, err := getJSON[[]entity.ActivityLog](ctx, s.durable, KeyLogs)
	if list == nil {
		list = []entity.ActivityLog{}
	}
	return list, err
}

// SaveLog antepone la entrada y conserva las últimas MaxActivityLogs.
func (s *Service) SaveLog(ctx context.Context, log entity.ActivityLog) error {
	logs, err := s.GetLogs(ctx)
	if err != nil {
		return err
	}
	logs = append([]entity.ActivityLog{log}, logs...)
	if len(logs) > entity.MaxActivityLogs {
		logs = logs[:entity.MaxActivityLogs]
	}
	return setJSON(ctx, s.durable, KeyLogs, logs)
}

// ── Sesión ────────────────────────────────────────────────────────────────────

func (s *Service) SetSession(ctx context.Context, session entity.Session) error {
	return setJSON(ctx, s.session, KeySession, session)
}

// GetSession devuelve la sesión activa o nil. Una sesión vencida se elimina al leerla.
func (s *Service) GetSession(ctx context.Context) (*entity.Session, error) {
	sess, ok, err := getJSON[entity.Session](ctx, s.session, KeySession)
	if err != nil || !ok {
		return nil, err
	}
	if sess.Expired(s.now(), s.sessionExpiry) {
		if err := s.session.Remove(ctx, KeySession); err != nil {
			return nil, fmt.Errorf("eliminar sesión expirada: %w", err)
		}
		return nil, nil
	}
	return &sess, nil
}

func (s *Service) ClearSession(ctx context.Context) error {
	return s.session.Remove(ctx, KeySession)
}

// ── Preferencias ──────────────────────────────────────────────────────────────

func (s *Service) GetRememberMe(ctx context.Context) (string, error) {
	data, err := s.durable.Get(ctx, KeyRememberMe)
	if err != nil {
		return "", fmt.Errorf("leer %s: %w", KeyRememberMe, err)
	}
	return string(data), nil
}

func (s *Service) SaveRememberMe(ctx context.Context, username string) error {
	if username == "" {
		return s.durable.Remove(ctx, KeyRememberMe)
	}
	return s.durable.Set(ctx, KeyRememberMe, []byte(username))
}

func (s *Service) GetPaymentMethods(ctx context.Context) ([]string, error) {
	methods, ok, err := getJSON[[]string](ctx, s.durable, KeyPaymentMethods)
	if err != nil || !ok {
		return nil, err
	}
	if methods == nil {
		methods = []string{}
	}
	return methods, nil
}

func (s *Service) SavePaymentMethods(ctx context.Context, methods []string) error {
	return setJSON(ctx, s.durable, KeyPaymentMethods, methods)
}

func (s *Service) GetCredentials(ctx context.Context) (map[string]string, error) {
	hashes, _, err := getJSON[map[string]string](ctx, s.durable, KeyCredentials)
	if hashes == nil {
		hashes = map[string]string{}
	}
	return hashes, err
}

func (s *Service) SaveCredentials(ctx context.Context, hashes map[string]string) error {
	return setJSON(ctx, s.durable, KeyCredentials, hashes)
}

// ClearAll borra productos, ventas y bitácora. Preferencias y sesión se conservan.
func (s *Service) ClearAll(ctx context.Context) error {
	return s.durable.Remove(ctx, KeyProducts, KeySales, KeyLogs)
}
