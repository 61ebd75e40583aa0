package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Asset struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	// StoragePath is the backend key used when the file is deleted.
	StoragePath string    `json:"storage_path"`
	Type        string    `gorm:"size:32" json:"type"`
	MimeType    string    `gorm:"size:128" json:"mime_type"`
	Size        int64     `json:"size"`
	ProjectID   *string   `gorm:"size:36;index" json:"project_id"`
	UploadedBy  string    `gorm:"size:36" json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`

	Tags []string `gorm:"-" json:"tags"`
}

func (a *Asset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

type AssetTag struct {
	ID       uint   `gorm:"primaryKey"`
	AssetID  string `gorm:"size:36;index"`
	Tag      string `gorm:"size:64"`
	Position int
}
