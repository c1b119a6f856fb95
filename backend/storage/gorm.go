package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVEntry is the table backing the gorm store.
type KVEntry struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (KVEntry) TableName() string { return "kv_entries" }

// Gorm persists key/value pairs through a gorm connection, for deployments
// that already run Postgres.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv table: %w", err)
	}
	return &Gorm{db: db}, nil
}

func (g *Gorm) Get(key string) (string, error) {
	var entry KVEntry
	err := g.db.First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return entry.Value, nil
}

func (g *Gorm) Set(key, value string) error {
	err := g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&KVEntry{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (g *Gorm) Remove(key string) error {
	err := g.db.Delete(&KVEntry{}, "key = ?", key).Error
	if err != nil {
		return fmt.Errorf("remove %q: %w", key, err)
	}
	return nil
}
