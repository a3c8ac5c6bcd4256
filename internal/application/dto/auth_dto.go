package dto

import "time"

// LoginRequest entrada para login.
type LoginRequest struct {
	Username   string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserResponse usuario apto para sesión (sin password).
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// SessionResponse sesión activa.
type SessionResponse struct {
	ID        string       `json:"id"`
	User      UserResponse `json:"user"`
	LoginTime time.Time    `json:"login_time"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// LoginResponse token JWT ligado a la sesión más el usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}

// RememberedResponse usuario recordado en el equipo ("" si no hay).
type RememberedResponse struct {
	Username string `json:"username"`
}

// ChangePasswordRequest entrada para cambiar la contraseña del usuario en sesión.
type ChangePasswordRequest struct {
	Current string `json:"current" validate:"required"`
	New     string `json:"new" validate:"required,min=4"`
	Confirm string `json:"confirm" validate:"required"`
}
