package client

import (
	"context"
	"log"
	"net/http"
	"time"

	"teamboard/dto"
	"teamboard/models"

	"github.com/google/uuid"
)

// CreateTask applies an optimistic placeholder before the network call.
// On success the placeholder is swapped for the server's copy; on failure
// the whole collection is reloaded, discarding the placeholder.
func (c *Client) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*models.Task, error) {
	placeholder := models.Task{
		ID:          "pending-" + uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssigneeIDs: req.Assignees,
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
	}
	c.mu.Lock()
	c.state.tasks = append([]models.Task{placeholder}, c.state.tasks...)
	c.mu.Unlock()

	var created models.Task
	if err := c.do(ctx, http.MethodPost, "/tasks", req, &created); err != nil {
		c.reload(ctx, KindTasks)
		return nil, err
	}

	c.mu.Lock()
	for i := range c.state.tasks {
		if c.state.tasks[i].ID == placeholder.ID {
			c.state.tasks[i] = created
			break
		}
	}
	c.mu.Unlock()
	return &created, nil
}

// UpdateTask patches the cached task immediately, then reconciles with the
// server result. A failed call reloads the authoritative collection.
func (c *Client) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*models.Task, error) {
	c.mu.Lock()
	for i := range c.state.tasks {
		if c.state.tasks[i].ID == id {
			applyTaskPatch(&c.state.tasks[i], req)
			break
		}
	}
	c.mu.Unlock()

	var updated models.Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, req, &updated); err != nil {
		c.reload(ctx, KindTasks)
		return nil, err
	}

	c.mu.Lock()
	for i := range c.state.tasks {
		if c.state.tasks[i].ID == id {
			c.state.tasks[i] = updated
			break
		}
	}
	c.mu.Unlock()
	return &updated, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	c.mu.Lock()
	kept := c.state.tasks[:0]
	for _, t := range c.state.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.state.tasks = kept
	c.mu.Unlock()

	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil); err != nil {
		c.reload(ctx, KindTasks)
		return err
	}
	return nil
}

// MoveTask drags a task to another board column.
func (c *Client) MoveTask(ctx context.Context, id, columnID string) (*models.Task, error) {
	return c.UpdateTask(ctx, id, dto.UpdateTaskRequest{Status: &columnID})
}

// reload discards local state for a collection after a failed mutation.
// Its own failure only logs: the next broadcast or manual refresh will
// converge the cache.
func (c *Client) reload(ctx context.Context, kind Kind) {
	if err := c.Refresh(ctx, kind); err != nil {
		log.Printf("client: reload %s failed: %v", kind, err)
	}
}

func applyTaskPatch(task *models.Task, req dto.UpdateTaskRequest) {
	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.TrackedSeconds != nil {
		task.TrackedSeconds = *req.TrackedSeconds
	}
	if req.Tracking != nil {
		task.Tracking = *req.Tracking
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			task.DueDate = nil
		} else if t, err := time.Parse(time.RFC3339, *req.DueDate); err == nil {
			task.DueDate = &t
		}
	}
	if req.Assignees != nil {
		task.AssigneeIDs = *req.Assignees
	}
	if req.Tags != nil {
		task.Tags = *req.Tags
	}
}
