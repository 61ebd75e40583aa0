package dto

import "time"

type SubtaskPayload struct {
	Title     string `json:"title" binding:"required"`
	Completed bool   `json:"completed"`
}

type CreateTaskRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	Priority    string           `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *time.Time       `json:"due_date"`
	ProjectID   string           `json:"project_id"`
	Assignees   []string         `json:"assignees"`
	Tags        []string         `json:"tags"`
	Subtasks    []SubtaskPayload `json:"subtasks"`
}

// UpdateTaskRequest is a partial update: nil fields are left unchanged.
// Collection fields are full-replace — when present (even empty) the stored
// collection is replaced to exactly match the input.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	// RFC3339; an explicit empty string clears the due date.
	DueDate *string `json:"due_date"`
	// An explicit empty string detaches the task from its project.
	ProjectID      *string           `json:"project_id"`
	TrackedSeconds *int64            `json:"tracked_seconds"`
	Tracking       *bool             `json:"tracking"`
	Assignees      *[]string         `json:"assignees"`
	Tags           *[]string         `json:"tags"`
	Subtasks       *[]SubtaskPayload `json:"subtasks"`
}

type AddAttachmentRequest struct {
	FileName string `json:"file_name" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Type     string `json:"type"`
}
