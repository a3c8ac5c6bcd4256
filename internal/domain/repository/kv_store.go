package repository

import "context"

// KVStore define el puerto de persistencia clave-valor (DIP).
// Los valores son blobs JSON de colecciones completas. Get devuelve (nil, nil) si la
// clave no existe.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, keys ...string) error
	// SetMany escribe todas las entradas de forma atómica: o se aplican todas o ninguna.
	SetMany(ctx context.Context, entries map[string][]byte) error
}
