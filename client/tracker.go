package client

import (
	"context"
	"log"
	"net/http"
	"time"

	"teamboard/dto"
)

// RunTracker drives task time tracking. Every tick (one second by default)
// it increments the local counter of each task flagged as tracking; every
// FlushEvery ticks it persists the accumulated counters. This cache is the
// one place the client holds authoritative state for longer than a refresh
// cycle, so the flush writes the local value rather than refetching first.
//
// A failed persist is logged and simply retried at the next flush: the
// counter keeps accumulating locally in the meantime.
func (c *Client) RunTracker(ctx context.Context) {
	ticker := time.NewTicker(c.TickInterval)
	defer ticker.Stop()

	ticks := 0
	for {
		select {
		case <-ctx.Done():
			c.flushTracked(ctx)
			return
		case <-ticker.C:
			c.mu.Lock()
			for i := range c.state.tasks {
				if c.state.tasks[i].Tracking {
					c.state.tasks[i].TrackedSeconds++
				}
			}
			c.mu.Unlock()

			ticks++
			if ticks%c.FlushEvery == 0 {
				c.flushTracked(ctx)
			}
		}
	}
}

// StartTracking flips a task's tracking flag on; StopTracking flips it off
// and persists the final counter in the same call.
func (c *Client) StartTracking(ctx context.Context, taskID string) error {
	on := true
	_, err := c.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{Tracking: &on})
	return err
}

func (c *Client) StopTracking(ctx context.Context, taskID string) error {
	c.mu.RLock()
	var seconds int64
	for i := range c.state.tasks {
		if c.state.tasks[i].ID == taskID {
			seconds = c.state.tasks[i].TrackedSeconds
			break
		}
	}
	c.mu.RUnlock()

	off := false
	_, err := c.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{
		Tracking:       &off,
		TrackedSeconds: &seconds,
	})
	return err
}

func (c *Client) flushTracked(ctx context.Context) {
	type pending struct {
		id      string
		seconds int64
	}
	c.mu.RLock()
	var batch []pending
	for i := range c.state.tasks {
		if c.state.tasks[i].Tracking {
			batch = append(batch, pending{c.state.tasks[i].ID, c.state.tasks[i].TrackedSeconds})
		}
	}
	c.mu.RUnlock()

	for _, p := range batch {
		seconds := p.seconds
		req := dto.UpdateTaskRequest{TrackedSeconds: &seconds}
		if err := c.do(ctx, http.MethodPut, "/tasks/"+p.id, req, nil); err != nil {
			log.Printf("client: persisting tracked time for %s failed: %v", p.id, err)
		}
	}
}
