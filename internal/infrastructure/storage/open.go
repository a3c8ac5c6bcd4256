package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/gestion-pro/internal/domain/repository"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/postgres"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/redis"
	"github.com/jhoicas/gestion-pro/internal/infrastructure/sqlite"
	"github.com/jhoicas/gestion-pro/pkg/config"
)

// Open arma el Service según STORE_DRIVER y SESSION_DRIVER. El cierre libera las
// conexiones abiertas en orden inverso.
func Open(ctx context.Context, cfg *config.Config) (*Service, func(), error) {
	var closers []func()
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var durable repository.KVStore
	switch cfg.Store.Driver {
	case "sqlite":
		kv, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("abrir sqlite: %w", err)
		}
		closers = append(closers, func() { _ = kv.Close() })
		durable = kv
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		closers = append(closers, pool.Close)
		kv := postgres.NewKVStore(pool)
		if err := kv.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("esquema kv_store: %w", err)
		}
		durable = kv
	default:
		durable = memory.NewKVStore()
	}

	// La sesión nunca va al almacén durable: muere con el proceso o con su TTL.
	var session repository.KVStore = memory.NewKVStore()
	if cfg.Session.Driver == "redis" {
		kv, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
			TTL:      cfg.Session.Expiry(),
		})
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		closers = append(closers, func() { _ = kv.Close() })
		session = kv
	}

	svc := NewService(durable, session, WithSessionExpiry(cfg.Session.Expiry()))
	return svc, closeAll, nil
}
