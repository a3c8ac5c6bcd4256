package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/state"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
)

// SettingsRepository persistencia que usan los ajustes.
type SettingsRepository interface {
	repository.PreferencesRepository
	repository.ProductRepository
	repository.DataResetter
}

// SettingsUseCase métodos de pago y borrado de datos.
type SettingsUseCase struct {
	store    *state.Store
	repo     SettingsRepository
	activity *ActivityUseCase
	now      func() time.Time
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store *state.Store, repo SettingsRepository, activity *ActivityUseCase, now func() time.Time) *SettingsUseCase {
	return &SettingsUseCase{store: store, repo: repo, activity: activity, now: now}
}

// PaymentMethods devuelve los métodos activos y cuáles son personalizados.
func (uc *SettingsUseCase) PaymentMethods(ctx context.Context) (*dto.PaymentMethodsResponse, error) {
	var methods []string
	err := uc.store.Do(ctx, func(d *state.Data) error {
		methods = state.CloneStrings(d.PaymentMethods)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return newPaymentMethodsResponse(methods), nil
}

// TogglePaymentMethod activa o desactiva un método. Nunca deja la lista vacía.
func (uc *SettingsUseCase) TogglePaymentMethod(ctx context.Context, userID, method string) (*dto.PaymentMethodsResponse, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("%w: método de pago vacío", domain.ErrInvalidInput)
	}
	return uc.mutate(ctx, userID, "toggle "+method, func(current []string) ([]string, error) {
		if contains(current, method) {
			return removeMethod(current, method)
		}
		return append(state.CloneStrings(current), method), nil
	})
}

// AddCustomPaymentMethod agrega un método nuevo (recortado). Duplicado = ErrDuplicate.
func (uc *SettingsUseCase) AddCustomPaymentMethod(ctx context.Context, userID, method string) (*dto.PaymentMethodsResponse, error) {
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, fmt.Errorf("%w: método de pago vacío", domain.ErrInvalidInput)
	}
	return uc.mutate(ctx, userID, "alta "+method, func(current []string) ([]string, error) {
		if contains(current, method) {
			return nil, fmt.Errorf("%w: el método ya existe", domain.ErrDuplicate)
		}
		return append(state.CloneStrings(current), method), nil
	})
}

// RemoveCustomPaymentMethod quita un método personalizado.
func (uc *SettingsUseCase) RemoveCustomPaymentMethod(ctx context.Context, userID, method string) (*dto.PaymentMethodsResponse, error) {
	if entity.IsDefaultPaymentMethod(method) {
		return nil, fmt.Errorf("%w: %q no es un método personalizado", domain.ErrInvalidInput, method)
	}
	return uc.mutate(ctx, userID, "baja "+method, func(current []string) ([]string, error) {
		if !contains(current, method) {
			return nil, domain.ErrNotFound
		}
		return removeMethod(current, method)
	})
}

func (uc *SettingsUseCase) mutate(ctx context.Context, userID, details string, fn func([]string) ([]string, error)) (*dto.PaymentMethodsResponse, error) {
	var methods []string
	err := uc.store.Do(ctx, func(d *state.Data) error {
		updated, err := fn(d.PaymentMethods)
		if err != nil {
			return err
		}
		if err := uc.repo.SavePaymentMethods(ctx, updated); err != nil {
			return fmt.Errorf("guardar métodos de pago: %w", err)
		}
		d.PaymentMethods = updated
		methods = state.CloneStrings(updated)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.activity.Record(ctx, userID, entity.ActionPaymentMethods, details)
	return newPaymentMethodsResponse(methods), nil
}

// ClearAllData borra productos, ventas y bitácora y vuelve a sembrar el catálogo
// inicial. Solo admin y con confirmación explícita. Los métodos de pago se conservan.
func (uc *SettingsUseCase) ClearAllData(ctx context.Context, userID, role string, confirm bool) error {
	if role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if !confirm {
		return domain.ErrConfirmationRequired
	}
	err := uc.store.Do(ctx, func(d *state.Data) error {
		if err := uc.repo.ClearAll(ctx); err != nil {
			return fmt.Errorf("borrar datos: %w", err)
		}
		// Desde aquí lo persistido ya está vacío: el estado en memoria debe reflejarlo
		// aunque falle la siembra.
		d.Sales = nil
		d.Products = nil
		d.Cart = entity.Cart{}
		initial := entity.InitialProducts(uc.now())
		if err := uc.repo.SaveProducts(ctx, initial); err != nil {
			return fmt.Errorf("sembrar productos: %w", err)
		}
		d.Products = initial
		return nil
	})
	if err != nil {
		return err
	}
	uc.activity.Record(ctx, userID, entity.ActionDataCleared, "")
	return nil
}

func newPaymentMethodsResponse(methods []string) *dto.PaymentMethodsResponse {
	custom := make([]string, 0)
	for _, m := range methods {
		if !entity.IsDefaultPaymentMethod(m) {
			custom = append(custom, m)
		}
	}
	return &dto.PaymentMethodsResponse{Methods: methods, Custom: custom}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func removeMethod(current []string, method string) ([]string, error) {
	if len(current) <= 1 {
		return nil, domain.ErrLastPaymentMethod
	}
	out := make([]string, 0, len(current)-1)
	for _, m := range current {
		if m != method {
			out = append(out, m)
		}
	}
	return out, nil
}
