package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/domain/repository"
	"github.com/jhoicas/gestion-pro/pkg/jwt"
)

// MinPasswordLength largo mínimo de una contraseña nueva.
const MinPasswordLength = 4

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// ActivityRecorder registra eventos en la bitácora.
type ActivityRecorder interface {
	Record(ctx context.Context, userID, action, details string)
}

// Options parámetros del caso de uso.
type Options struct {
	JWT           JWTConfig
	LoginDelay    time.Duration // retardo artificial antes de comparar credenciales
	SessionExpiry time.Duration
	Now           func() time.Time
}

// AuthUseCase login, logout, sesión, usuario recordado y cambio de contraseña.
type AuthUseCase struct {
	sessions repository.SessionRepository
	prefs    repository.PreferencesRepository
	activity ActivityRecorder
	metrics  ports.MetricsRecorder
	opts     Options
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	sessions repository.SessionRepository,
	prefs repository.PreferencesRepository,
	activity ActivityRecorder,
	metrics ports.MetricsRecorder,
	opts Options,
) *AuthUseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SessionExpiry <= 0 {
		opts.SessionExpiry = 8 * time.Hour
	}
	return &AuthUseCase{sessions: sessions, prefs: prefs, activity: activity, metrics: metrics, opts: opts}
}

// Login valida usuario/contraseña contra las cuentas fijas, crea la sesión y emite
// un JWT ligado a ella. El error de credenciales no distingue usuario inexistente de
// contraseña incorrecta.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrMissingCredentials
	}

	if uc.opts.LoginDelay > 0 {
		timer := time.NewTimer(uc.opts.LoginDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	account, err := uc.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		uc.metrics.LoginAttempt(false)
		return nil, err
	}

	session := entity.Session{
		ID:        uuid.NewString(),
		User:      account.User,
		LoginTime: uc.opts.Now(),
	}
	if err := uc.sessions.SetSession(ctx, session); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}

	remembered := ""
	if in.RememberMe {
		remembered = in.Username
	}
	if err := uc.prefs.SaveRememberMe(ctx, remembered); err != nil {
		return nil, fmt.Errorf("guardar usuario recordado: %w", err)
	}

	token, err := jwt.Generate(uc.opts.JWT.Secret, session.User.ID, session.User.Role, session.ID, uc.opts.JWT.Issuer, uc.opts.JWT.ExpMinutes)
	if err != nil {
		return nil, err
	}

	uc.metrics.LoginAttempt(true)
	uc.activity.Record(ctx, session.User.ID, entity.ActionLogin, "")
	return &dto.LoginResponse{
		Token:   token,
		Session: dto.NewSessionResponse(session, uc.opts.SessionExpiry),
	}, nil
}

// authenticate compara con distinción de mayúsculas. Una contraseña cambiada
// (hash bcrypt guardado) reemplaza a la fija de la cuenta.
func (uc *AuthUseCase) authenticate(ctx context.Context, username, password string) (*entity.Account, error) {
	var account *entity.Account
	for i := range entity.Accounts {
		if entity.Accounts[i].Username == username {
			account = &entity.Accounts[i]
			break
		}
	}
	if account == nil {
		return nil, domain.ErrInvalidCredentials
	}

	hashes, err := uc.prefs.GetCredentials(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer credenciales: %w", err)
	}
	if hash, ok := hashes[account.ID]; ok {
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		return account, nil
	}
	if account.Password != password {
		return nil, domain.ErrInvalidCredentials
	}
	return account, nil
}

// Logout borra la sesión de inmediato.
func (uc *AuthUseCase) Logout(ctx context.Context, userID string) error {
	if err := uc.sessions.ClearSession(ctx); err != nil {
		return fmt.Errorf("borrar sesión: %w", err)
	}
	uc.activity.Record(ctx, userID, entity.ActionLogout, "")
	return nil
}

// CurrentSession devuelve la sesión activa si corresponde al ID del token.
// Una sesión vencida, borrada o reemplazada por otro login da ErrSessionExpired.
func (uc *AuthUseCase) CurrentSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	session, err := uc.sessions.GetSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("leer sesión: %w", err)
	}
	if session == nil || session.ID != sessionID {
		return nil, domain.ErrSessionExpired
	}
	return session, nil
}

// SessionResponse mapea la sesión con su vencimiento configurado.
func (uc *AuthUseCase) SessionResponse(s entity.Session) dto.SessionResponse {
	return dto.NewSessionResponse(s, uc.opts.SessionExpiry)
}

// Remembered devuelve el usuario recordado ("" si no hay).
func (uc *AuthUseCase) Remembered(ctx context.Context) (string, error) {
	return uc.prefs.GetRememberMe(ctx)
}

// ChangePassword verifica la contraseña actual y guarda el hash bcrypt de la nueva.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, user entity.User, in dto.ChangePasswordRequest) error {
	if in.Current == "" || in.New == "" || in.Confirm == "" {
		return domain.ErrMissingCredentials
	}
	if _, err := uc.authenticate(ctx, user.Username, in.Current); err != nil {
		return err
	}
	if in.New != in.Confirm {
		return domain.ErrPasswordMismatch
	}
	if len([]rune(strings.TrimSpace(in.New))) < MinPasswordLength {
		return domain.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.New), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	hashes, err := uc.prefs.GetCredentials(ctx)
	if err != nil {
		return fmt.Errorf("leer credenciales: %w", err)
	}
	if hashes == nil {
		hashes = make(map[string]string)
	}
	hashes[user.ID] = string(hash)
	if err := uc.prefs.SaveCredentials(ctx, hashes); err != nil {
		return fmt.Errorf("guardar credenciales: %w", err)
	}
	uc.activity.Record(ctx, user.ID, entity.ActionPasswordChanged, "")
	return nil
}
