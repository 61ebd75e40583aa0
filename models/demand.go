package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Demand is an IT support request. It lives on its own set of status lanes,
// separate from the task board.
type Demand struct {
	ID             string     `gorm:"primaryKey;size:36" json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	RequesterID    *string    `gorm:"size:36" json:"requester_id"`
	RequesterName  string     `json:"requester_name"`
	RequesterEmail string     `json:"requester_email"`
	Urgency        string     `gorm:"size:16;default:'Media'" json:"urgency"`
	Priority       string     `gorm:"size:16;default:'Normal'" json:"priority"`
	Status         string     `gorm:"size:32;default:'backlog'" json:"status"`
	DueDate        *time.Time `json:"due_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	AssigneeIDs []string `gorm:"-" json:"assignee_ids"`
}

func (d *Demand) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

type DemandAssignee struct {
	DemandID string `gorm:"primaryKey;size:36"`
	UserID   string `gorm:"primaryKey;size:36"`
	Position int
}
