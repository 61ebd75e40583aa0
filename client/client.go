// Package client keeps an in-memory mirror of every server collection and
// keeps it synchronized the simple way: optimistic local patches on its own
// mutations, and a full refetch of a collection whenever a broadcast event
// or a failed call touches it. Reloading truth replaces structured
// rollback.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"teamboard/models"
)

// Kind identifies one synchronized collection.
type Kind string

const (
	KindTasks         Kind = "tasks"
	KindProjects      Kind = "projects"
	KindUsers         Kind = "users"
	KindColumns       Kind = "board-columns"
	KindNotifications Kind = "notifications"
	KindAssets        Kind = "assets"
	KindDemands       Kind = "it-demands"
)

// kindForEvent maps a broadcast event name to the collection it
// invalidates.
func kindForEvent(event string) (Kind, bool) {
	prefix, _, ok := strings.Cut(event, ":")
	if !ok {
		return "", false
	}
	switch prefix {
	case "task":
		return KindTasks, true
	case "project":
		return KindProjects, true
	case "user":
		return KindUsers, true
	case "column":
		return KindColumns, true
	case "notification":
		return KindNotifications, true
	case "asset":
		return KindAssets, true
	case "it-demand":
		return KindDemands, true
	default:
		return "", false
	}
}

type state struct {
	tasks         []models.Task
	projects      []models.Project
	users         []models.User
	columns       []models.BoardColumn
	notifications []models.Notification
	assets        []models.Asset
	demands       []models.Demand
}

type Client struct {
	baseURL string
	token   string
	httpc   *http.Client

	mu    sync.RWMutex
	state state

	// Time-tracking loop tuning; see RunTracker.
	TickInterval time.Duration
	FlushEvery   int
}

func New(baseURL, token string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		token:        token,
		httpc:        &http.Client{Timeout: 30 * time.Second},
		TickInterval: time.Second,
		FlushEvery:   10,
	}
}

// APIError carries the server's error message and status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(res.Body).Decode(&payload)
		return &APIError{Status: res.StatusCode, Message: payload.Error}
	}

	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}

// Refresh replaces one cached collection with the server's authoritative
// copy.
func (c *Client) Refresh(ctx context.Context, kind Kind) error {
	path := "/" + string(kind)
	switch kind {
	case KindTasks:
		var v []models.Task
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.tasks = v
		c.mu.Unlock()
	case KindProjects:
		var v []models.Project
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.projects = v
		c.mu.Unlock()
	case KindUsers:
		var v []models.User
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.users = v
		c.mu.Unlock()
	case KindColumns:
		var v []models.BoardColumn
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.columns = v
		c.mu.Unlock()
	case KindNotifications:
		var v []models.Notification
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.notifications = v
		c.mu.Unlock()
	case KindAssets:
		var v []models.Asset
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.assets = v
		c.mu.Unlock()
	case KindDemands:
		var v []models.Demand
		if err := c.do(ctx, http.MethodGet, path, nil, &v); err != nil {
			return err
		}
		c.mu.Lock()
		c.state.demands = v
		c.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", kind)
	}
	return nil
}

// RefreshAll loads every collection; typically called once after login.
func (c *Client) RefreshAll(ctx context.Context) error {
	for _, kind := range []Kind{
		KindTasks, KindProjects, KindUsers, KindColumns,
		KindNotifications, KindAssets, KindDemands,
	} {
		if err := c.Refresh(ctx, kind); err != nil {
			return fmt.Errorf("refresh %s: %w", kind, err)
		}
	}
	return nil
}

func (c *Client) Tasks() []models.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Task, len(c.state.tasks))
	copy(out, c.state.tasks)
	return out
}

func (c *Client) Projects() []models.Project {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Project, len(c.state.projects))
	copy(out, c.state.projects)
	return out
}

func (c *Client) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.User, len(c.state.users))
	copy(out, c.state.users)
	return out
}

func (c *Client) Columns() []models.BoardColumn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.BoardColumn, len(c.state.columns))
	copy(out, c.state.columns)
	return out
}

func (c *Client) Notifications() []models.Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Notification, len(c.state.notifications))
	copy(out, c.state.notifications)
	return out
}

func (c *Client) Assets() []models.Asset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Asset, len(c.state.assets))
	copy(out, c.state.assets)
	return out
}

func (c *Client) Demands() []models.Demand {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Demand, len(c.state.demands))
	copy(out, c.state.demands)
	return out
}
