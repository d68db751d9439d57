package db

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type kvRecord struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvRecord) TableName() string {
	return "kv_records"
}

// KVRepository is the on-device key-value store: serialized collection blobs
// under fixed string keys.
type KVRepository struct {
	database *gorm.DB
}

func NewKVRepository(database *gorm.DB) *KVRepository {
	return &KVRepository{database: database}
}

func (repo *KVRepository) Get(key string) (string, bool, error) {
	record := kvRecord{}
	result := repo.database.Where("key = ?", key).Limit(1).Find(&record)
	if result.Error != nil {
		return "", false, fmt.Errorf("load key %s: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return "", false, nil
	}
	return record.Value, true, nil
}

func (repo *KVRepository) Set(key string, value string) error {
	record := kvRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	err := repo.database.Exec(
		`INSERT INTO kv_records(key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		record.Key, record.Value, record.UpdatedAt,
	).Error
	if err != nil {
		return fmt.Errorf("store key %s: %w", key, err)
	}
	return nil
}

func (repo *KVRepository) Remove(key string) error {
	if err := repo.database.Where("key = ?", key).Delete(&kvRecord{}).Error; err != nil {
		return fmt.Errorf("remove key %s: %w", key, err)
	}
	return nil
}
