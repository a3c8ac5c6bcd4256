package entity

import "time"

// Session envuelve al usuario autenticado con la hora de login.
// ID permite invalidar tokens emitidos para una sesión anterior.
type Session struct {
	ID        string    `json:"id"`
	User      User      `json:"user"`
	LoginTime time.Time `json:"loginTime"`
}

// Expired indica si a now ya pasaron más de maxAge desde el login.
func (s Session) Expired(now time.Time, maxAge time.Duration) bool {
	return now.Sub(s.LoginTime) > maxAge
}
