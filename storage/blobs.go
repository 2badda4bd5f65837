package storage

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/DannerVelaF/VeterinariaAdelaFront/models"
)

// LoadCart returns the persisted cart snapshot. ok is false when no cart has
// ever been saved.
func (s *Store) LoadCart() (snap models.CartSnapshot, ok bool, err error) {
	row, err := s.read(cartKey)
	if err != nil || row == nil {
		return models.CartSnapshot{}, false, err
	}
	if row.Version != cartSchemaVersion {
		return models.CartSnapshot{}, false, fmt.Errorf("cart snapshot: unsupported schema version %d", row.Version)
	}
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return models.CartSnapshot{}, false, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return snap, true, nil
}

// SaveCart rewrites the cart blob.
func (s *Store) SaveCart(snap models.CartSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	return s.write(cartKey, cartSchemaVersion, data)
}

// LoadSession returns the persisted session snapshot. ok is false when no
// session has ever been saved.
func (s *Store) LoadSession() (snap models.SessionSnapshot, ok bool, err error) {
	row, err := s.read(sessionKey)
	if err != nil || row == nil {
		return models.SessionSnapshot{}, false, err
	}
	if row.Version != sessionSchemaVersion {
		return models.SessionSnapshot{}, false, fmt.Errorf("session snapshot: unsupported schema version %d", row.Version)
	}
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return models.SessionSnapshot{}, false, fmt.Errorf("decode session snapshot: %w", err)
	}
	return snap, true, nil
}

// SaveSession rewrites the session blob.
func (s *Store) SaveSession(snap models.SessionSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session snapshot: %w", err)
	}
	return s.write(sessionKey, sessionSchemaVersion, data)
}

// migrateCart upgrades a version-0 cart blob, which predates owner scoping,
// by backfilling an unowned marker and a fresh timestamp. Newer versions than
// the current schema are refused rather than guessed at.
func (s *Store) migrateCart() error {
	row, err := s.read(cartKey)
	if err != nil || row == nil {
		return err
	}
	switch {
	case row.Version == cartSchemaVersion:
		return nil
	case row.Version > cartSchemaVersion:
		return fmt.Errorf("cart snapshot: schema version %d is newer than supported %d", row.Version, cartSchemaVersion)
	}

	var snap models.CartSnapshot
	if err := json.Unmarshal(row.Data, &snap); err != nil {
		return fmt.Errorf("decode v%d cart snapshot: %w", row.Version, err)
	}
	snap.OwnerUserID = 0
	snap.LastUpdated = s.now()

	if err := s.SaveCart(snap); err != nil {
		return err
	}
	s.log.Info("migrated cart snapshot",
		zap.Int("from_version", row.Version),
		zap.Int("to_version", cartSchemaVersion))
	return nil
}
