package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
	"github.com/jhoicas/gestion-pro/pkg/logger"
)

// ActivityUseCase registra y lista la bitácora de actividad.
// Las escrituras pasan por el escritor único para no perder entradas concurrentes.
type ActivityUseCase struct {
	store *state.Store
	repo  repository.ActivityLogRepository
	now   func() time.Time
	log   *logger.Logger
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(store *state.Store, repo repository.ActivityLogRepository, now func() time.Time, log *logger.Logger) *ActivityUseCase {
	return &ActivityUseCase{store: store, repo: repo, now: now, log: log}
}

// Record agrega una entrada. Un fallo se registra en el log y no se propaga:
// la bitácora nunca debe impedir la operación que la origina.
// No llamar desde dentro de state.Store.Do.
func (uc *ActivityUseCase) Record(ctx context.Context, userID, action, details string) {
	entry := entity.ActivityLog{
		ID:        uuid.NewString(),
		UserID:    userID,
		Action:    action,
		Timestamp: uc.now(),
		Details:   details,
	}
	err := uc.store.Do(ctx, func(*state.Data) error {
		return uc.repo.SaveLog(ctx, entry)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo guardar la bitácora")
	}
}

// List devuelve la bitácora, más reciente primero.
func (uc *ActivityUseCase) List(ctx context.Context) ([]dto.ActivityLogDTO, error) {
	var logs []entity.ActivityLog
	err := uc.store.Do(ctx, func(*state.Data) error {
		var err error
		logs, err = uc.repo.GetLogs(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto.NewActivityLogs(logs), nil
}
