package scenariostore

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// kvRecord is the MySQL row shape for one stored key.
type kvRecord struct {
	Key       string    `gorm:"column:kv_key;primaryKey;size:512"`
	Value     string    `gorm:"column:kv_value;type:longtext"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (kvRecord) TableName() string { return "scenario_kv" }

// GormBackend keeps the KV contract on a MySQL table, for deployments
// where scenario state must outlive the host process.
type GormBackend struct {
	db *gorm.DB
}

// NewGormBackend opens the DSN and ensures the table exists.
func NewGormBackend(dsn string) (*GormBackend, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("migrate scenario_kv: %w", err)
	}
	return &GormBackend{db: db}, nil
}

func (b *GormBackend) Get(key string) (string, bool, error) {
	var rec kvRecord
	err := b.db.First(&rec, "kv_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (b *GormBackend) Set(key, value string) error {
	rec := kvRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	return b.db.Save(&rec).Error
}

func (b *GormBackend) Delete(key string) error {
	return b.db.Delete(&kvRecord{}, "kv_key = ?", key).Error
}

func (b *GormBackend) Keys(prefix string) ([]string, error) {
	var keys []string
	err := b.db.Model(&kvRecord{}).
		Where("kv_key LIKE ?", prefix+"%").
		Pluck("kv_key", &keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}
