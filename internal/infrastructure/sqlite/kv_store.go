// Package sqlite implementa el KVStore sobre un archivo SQLite local (GORM).
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/jhoicas/gestion-pro/internal/domain/repository"
)

var _ repository.KVStore = (*KVStore)(nil)

// kvEntry fila de la tabla kv_entries.
type kvEntry struct {
	Name      string `gorm:"primaryKey;size:191"`
	Value     []byte
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// KVStore almacén clave-valor persistente en un archivo SQLite.
type KVStore struct {
	db *gorm.DB
}

// Open abre (o crea) el archivo y migra la tabla.
func Open(path string) (*KVStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // el log de la app va por zerolog
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("sqlite: migrar: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close cierra la conexión subyacente.
func (s *KVStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var e kvEntry
	err := s.db.WithContext(ctx).Where("name = ?", key).First(&e).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("sqlite: get %s: %w", key, err)
	}
	return e.Value, nil
}

func upsert(tx *gorm.DB, key string, value []byte) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&kvEntry{Name: key, Value: value, UpdatedAt: time.Now()}).Error
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := upsert(s.db.WithContext(ctx), key, value); err != nil {
		return fmt.Errorf("sqlite: set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Remove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).Where("name IN ?", keys).Delete(&kvEntry{}).Error; err != nil {
		return fmt.Errorf("sqlite: remove: %w", err)
	}
	return nil
}

// SetMany escribe todas las entradas en una transacción.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for k, v := range entries {
			if err := upsert(tx, k, v); err != nil {
				return fmt.Errorf("sqlite: set %s: %w", k, err)
			}
		}
		return nil
	})
}
