package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	// Status matches a board column id. There is deliberately no foreign
	// key: tasks survive column deletion and the board tolerates orphaned
	// status values.
	Status         string     `gorm:"size:64;default:'backlog'" json:"status"`
	Priority       string     `gorm:"size:16;default:'medium'" json:"priority"`
	DueDate        *time.Time `json:"due_date"`
	ProjectID      *string    `gorm:"size:36;index" json:"project_id"`
	TrackedSeconds int64      `gorm:"default:0" json:"tracked_seconds"`
	Tracking       bool       `gorm:"default:false" json:"tracking"`
	CreatedAt      time.Time  `json:"created_at"`

	Subtasks    []Subtask    `gorm:"constraint:OnDelete:CASCADE" json:"subtasks"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE" json:"attachments"`

	// Assembled from join/child tables on read.
	AssigneeIDs []string `gorm:"-" json:"assignee_ids"`
	Tags        []string `gorm:"-" json:"tags"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

type Subtask struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	TaskID    string `gorm:"size:36;index" json:"task_id"`
	Title     string `json:"title"`
	Completed bool   `gorm:"default:false" json:"completed"`
	Position  int    `json:"position"`
}

func (s *Subtask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// TaskAssignee is the task/user join row. Position preserves the order the
// assignees were submitted in.
type TaskAssignee struct {
	TaskID   string `gorm:"primaryKey;size:36"`
	UserID   string `gorm:"primaryKey;size:36"`
	Position int
}

type TaskTag struct {
	ID       uint   `gorm:"primaryKey"`
	TaskID   string `gorm:"size:36;index"`
	Tag      string `gorm:"size:64"`
	Position int
}
