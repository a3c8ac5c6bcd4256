package repository

import (
	"context"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// SessionRepository puerto para la sesión activa (almacenamiento de vida corta).
// GetSession aplica la expiración de forma perezosa: una sesión vencida se borra y
// se devuelve nil.
type SessionRepository interface {
	SetSession(ctx context.Context, session entity.Session) error
	GetSession(ctx context.Context) (*entity.Session, error)
	ClearSession(ctx context.Context) error
}
