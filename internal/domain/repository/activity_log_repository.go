package repository

import (
	"context"

	"github.com/jhoicas/gestion-pro/internal/domain/entity"
)

// ActivityLogRepository puerto para la bitácora (más reciente primero, tope 100).
type ActivityLogRepository interface {
	GetLogs(ctx context.Context) ([]entity.ActivityLog, error)
	SaveLog(ctx context.Context, log entity.ActivityLog) error
}

// DataResetter borra productos, ventas y bitácora.
type DataResetter interface {
	ClearAll(ctx context.Context) error
}
