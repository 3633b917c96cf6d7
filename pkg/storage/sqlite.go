package storage

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Blob is one persisted key-value row.
type Blob struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

type sqliteStore struct{ db *gorm.DB }

func NewSQLite(db *gorm.DB) Store { return &sqliteStore{db} }

func (s *sqliteStore) Get(key string) ([]byte, bool, error) {
	var b Blob
	if err := s.db.First(&b, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b.Value, true, nil
}

func (s *sqliteStore) Set(key string, value []byte) error {
	return s.db.Save(&Blob{Key: key, Value: value, UpdatedAt: time.Now()}).Error
}

func (s *sqliteStore) Remove(key string) error {
	return s.db.Delete(&Blob{}, "key = ?", key).Error
}
