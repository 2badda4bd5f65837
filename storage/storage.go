// Package storage persists the client's two local state blobs, the cart and
// the session, as version-tagged JSON snapshots in an embedded SQLite file.
// Each blob is loaded once at startup and rewritten whole on every mutation.
package storage

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Blob keys. They match the web client's localStorage keys so the naming
// stays consistent across clients.
const (
	cartKey    = "cart-storage"
	sessionKey = "auth-storage"
)

// Current schema versions. Cart version 0 predates owner scoping and is
// migrated at open time.
const (
	cartSchemaVersion    = 1
	sessionSchemaVersion = 1
)

// Snapshot is one key-addressed, version-tagged blob row.
type Snapshot struct {
	Key       string `gorm:"primaryKey"`
	Version   int
	Data      []byte
	UpdatedAt time.Time
}

type Store struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// Open opens (or creates) the snapshot database at path and runs pending
// blob migrations before the store is considered ready.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot table: %w", err)
	}

	s := &Store{db: db, log: logger, now: time.Now}
	if err := s.migrateCart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) read(key string) (*Snapshot, error) {
	var snap Snapshot
	err := s.db.First(&snap, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %q: %w", key, err)
	}
	return &snap, nil
}

func (s *Store) write(key string, version int, data []byte) error {
	snap := Snapshot{Key: key, Version: version, Data: data, UpdatedAt: s.now()}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&snap).Error; err != nil {
		return fmt.Errorf("write snapshot %q: %w", key, err)
	}
	return nil
}
