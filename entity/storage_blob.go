package entity

import "time"

// StorageBlob is one persisted state value under a fixed key, the
// server-side stand-in for browser localStorage.
type StorageBlob struct {
	Key       string `gorm:"primaryKey" json:"key"`
	Value     []byte `gorm:"type:blob" json:"-"`
	UpdatedAt time.Time
}
