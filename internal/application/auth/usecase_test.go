package auth_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-pro/internal/application/auth"
	"github.com/jhoicas/gestion-pro/internal/application/dto"
	"github.com/jhoicas/gestion-pro/internal/application/ports"
	"github.com/jhoicas/gestion-pro/internal/domain"
	"github.com/jhoicas/gestion-pro/internal/domain/entity"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/storage"
	"github.com/jhoicas/gestion-pro/pkg/jwt"
)

const secret = "secreto-de-prueba"

type recordedEvent struct{ userID, action string }

type fakeActivity struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (a *fakeActivity) Record(_ context.Context, userID, action, _ string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, recordedEvent{userID, action})
}

type loginMetrics struct {
	ports.NopMetrics
	ok, failed int
}

func (m *loginMetrics) LoginAttempt(success bool) {
	if success {
		m.ok++
	} else {
		m.failed++
	}
}

type env struct {
	uc       *auth.AuthUseCase
	repo     *storage.Service
	activity *fakeActivity
	metrics  *loginMetrics
	now      time.Time
}

func newEnv(t *testing.T, delay time.Duration) *env {
	t.Helper()
	e := &env{
		activity: &fakeActivity{},
		metrics:  &loginMetrics{},
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	clock := func() time.Time { return e.now }
	kv := memory.NewKVStore()
	e.repo = storage.NewService(kv, kv, storage.WithClock(clock), storage.WithSessionExpiry(time.Hour))
	e.uc = auth.NewAuthUseCase(e.repo, e.repo, e.activity, e.metrics, auth.Options{
		JWT:           auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"},
		LoginDelay:    delay,
		SessionExpiry: time.Hour,
		Now:           clock,
	})
	return e
}

func TestLogin_CredencialesValidas(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	out, err := e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234578"})
	require.NoError(t, err)

	assert.Equal(t, "u1", out.Session.User.ID)
	assert.Equal(t, entity.RoleAdmin, out.Session.User.Role)
	assert.Equal(t, e.now.Add(time.Hour), out.Session.ExpiresAt)

	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Session.ID, claims.SessionID)
	assert.Equal(t, "u1", claims.UserID)

	sess, err := e.uc.CurrentSession(ctx, claims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.User.Username)

	assert.Equal(t, 1, e.metrics.ok)
	assert.Equal(t, []recordedEvent{{"u1", entity.ActionLogin}}, e.activity.events)
}

func TestLogin_Errores(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.LoginRequest
		want error
	}{
		{"sin usuario", dto.LoginRequest{Password: "x"}, domain.ErrMissingCredentials},
		{"sin contraseña", dto.LoginRequest{Username: "admin"}, domain.ErrMissingCredentials},
		{"usuario inexistente", dto.LoginRequest{Username: "root", Password: "1234578"}, domain.ErrInvalidCredentials},
		{"contraseña incorrecta", dto.LoginRequest{Username: "admin", Password: "ventas123"}, domain.ErrInvalidCredentials},
		{"distingue mayúsculas", dto.LoginRequest{Username: "Admin", Password: "1234578"}, domain.ErrInvalidCredentials},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.uc.Login(ctx, tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
	assert.Equal(t, 3, e.metrics.failed)
	assert.Empty(t, e.activity.events)
}

func TestLogin_RecordarUsuario(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	_, err := e.uc.Login(ctx, dto.LoginRequest{Username: "vendedor", Password: "ventas123", RememberMe: true})
	require.NoError(t, err)
	name, err := e.uc.Remembered(ctx)
	require.NoError(t, err)
	assert.Equal(t, "vendedor", name)

	_, err = e.uc.Login(ctx, dto.LoginRequest{Username: "vendedor", Password: "ventas123"})
	require.NoError(t, err)
	name, err = e.uc.Remembered(ctx)
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestLogin_RetardoCancelable(t *testing.T) {
	e := newEnv(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234578"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_LogoutYNuevoLoginInvalidan(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	first, err := e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234578"})
	require.NoError(t, err)
	second, err := e.uc.Login(ctx, dto.LoginRequest{Username: "vendedor", Password: "ventas123"})
	require.NoError(t, err)

	_, err = e.uc.CurrentSession(ctx, first.Session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)

	require.NoError(t, e.uc.Logout(ctx, "u2"))
	_, err = e.uc.CurrentSession(ctx, second.Session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSession_Vencida(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()

	out, err := e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234578"})
	require.NoError(t, err)

	e.now = e.now.Add(time.Hour + time.Second)
	_, err = e.uc.CurrentSession(ctx, out.Session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestChangePassword(t *testing.T) {
	e := newEnv(t, 0)
	ctx := context.Background()
	admin := entity.Accounts[0].User

	err := e.uc.ChangePassword(ctx, admin, dto.ChangePasswordRequest{Current: "mal", New: "nueva1", Confirm: "nueva1"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	err = e.uc.ChangePassword(ctx, admin, dto.ChangePasswordRequest{Current: "1234578", New: "nueva1", Confirm: "otra"})
	assert.ErrorIs(t, err, domain.ErrPasswordMismatch)

	err = e.uc.ChangePassword(ctx, admin, dto.ChangePasswordRequest{Current: "1234578", New: "abc", Confirm: "abc"})
	assert.ErrorIs(t, err, domain.ErrPasswordTooShort)

	err = e.uc.ChangePassword(ctx, admin, dto.ChangePasswordRequest{Current: "1234578"})
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	require.NoError(t, e.uc.ChangePassword(ctx, admin, dto.ChangePasswordRequest{Current: "1234578", New: "nueva1", Confirm: "nueva1"}))

	_, err = e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "1234578"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	_, err = e.uc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "nueva1"})
	require.NoError(t, err)

	// La otra cuenta conserva su contraseña.
	_, err = e.uc.Login(ctx, dto.LoginRequest{Username: "vendedor", Password: "ventas123"})
	require.NoError(t, err)
}
