package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attachment struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	TaskID      *string   `gorm:"size:36;index" json:"task_id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	StoragePath string    `json:"storage_path"`
	Type        string    `gorm:"size:32" json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func (a *Attachment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
