package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Notification struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	UserID  string `gorm:"size:36;index" json:"user_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	// "read" is a reserved word in MySQL, hence the explicit column name.
	Read      bool      `gorm:"column:is_read;default:false" json:"read"`
	Category  string    `gorm:"size:32" json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return nil
}
