package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;size:191" json:"email"`
	Role      string    `gorm:"size:32;default:'member'" json:"role"`
	AvatarURL string    `json:"avatar_url"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
