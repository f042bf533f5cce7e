package repository

import (
	"errors"
	"time"

	"canteen/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StateRepository struct{ DB *gorm.DB }

func NewStateRepository(db *gorm.DB) *StateRepository { return &StateRepository{DB: db} }

// Load returns the raw blob under key, or nil when nothing was saved yet.
func (r *StateRepository) Load(key string) ([]byte, error) {
	var row entity.StorageBlob
	err := r.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row.Value, nil
}

// Save overwrites the blob under key.
func (r *StateRepository) Save(key string, value []byte) error {
	row := entity.StorageBlob{Key: key, Value: value, UpdatedAt: time.Now()}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
}
