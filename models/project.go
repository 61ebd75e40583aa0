package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `json:"name"`
	Client    string    `json:"client"`
	Budget    float64   `gorm:"default:0" json:"budget"`
	Color     string    `gorm:"size:16" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	// Assembled from the project_members join table; never written by gorm
	// directly so membership replacement stays explicit.
	MemberIDs []string `gorm:"-" json:"member_ids"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// ProjectMember is the project/user join row. The composite primary key
// keeps the membership list free of duplicate user ids.
type ProjectMember struct {
	ProjectID string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"primaryKey;size:36"`
}
