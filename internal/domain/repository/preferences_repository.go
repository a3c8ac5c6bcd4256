package repository

import "context"

// PreferencesRepository puerto para ajustes durables de la tienda.
type PreferencesRepository interface {
	// GetRememberMe devuelve "" si no hay usuario recordado.
	GetRememberMe(ctx context.Context) (string, error)
	// SaveRememberMe guarda el usuario; con "" lo elimina.
	SaveRememberMe(ctx context.Context, username string) error
	// GetPaymentMethods devuelve nil si nunca se guardaron.
	GetPaymentMethods(ctx context.Context) ([]string, error)
	SavePaymentMethods(ctx context.Context, methods []string) error
	// GetCredentials hashes bcrypt por ID de usuario que reemplazan la contraseña fija.
	GetCredentials(ctx context.Context) (map[string]string, error)
	SaveCredentials(ctx context.Context, hashes map[string]string) error
}
