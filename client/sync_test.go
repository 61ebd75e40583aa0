package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"teamboard/dto"
	"teamboard/models"
	"teamboard/realtime"

	"github.com/gin-gonic/gin"
)

// fakeServer is a minimal task API: an in-memory list, a switchable
// failure mode and a request log.
type fakeServer struct {
	mu       sync.Mutex
	tasks    []models.Task
	failPuts bool
	puts     []dto.UpdateTaskRequest
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		json.NewEncoder(w).Encode(f.tasks)
	})
	mux.HandleFunc("POST /tasks", func(w http.ResponseWriter, r *http.Request) {
		var req dto.CreateTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		task := models.Task{ID: "srv-1", Title: req.Title, Status: req.Status}
		f.mu.Lock()
		f.tasks = append([]models.Task{task}, f.tasks...)
		f.mu.Unlock()
		json.NewEncoder(w).Encode(task)
	})
	mux.HandleFunc("PUT /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req dto.UpdateTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		f.puts = append(f.puts, req)
		if f.failPuts {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			return
		}
		id := r.PathValue("id")
		for i := range f.tasks {
			if f.tasks[i].ID == id {
				if req.Title != nil {
					f.tasks[i].Title = *req.Title
				}
				if req.TrackedSeconds != nil {
					f.tasks[i].TrackedSeconds = *req.TrackedSeconds
				}
				json.NewEncoder(w).Encode(f.tasks[i])
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
	})
	return mux
}

func newTestClient(t *testing.T, f *fakeServer) *Client {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	return New(srv.URL, "test-token")
}

func TestRefreshReplacesCollection(t *testing.T) {
	f := &fakeServer{tasks: []models.Task{
		{ID: "t1", Title: "One"},
		{ID: "t2", Title: "Two"},
	}}
	c := newTestClient(t, f)

	if err := c.Refresh(context.Background(), KindTasks); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	tasks := c.Tasks()
	if len(tasks) != 2 || tasks[0].ID != "t1" {
		t.Fatalf("tasks = %+v", tasks)
	}
}

func TestOptimisticUpdateThenReconcile(t *testing.T) {
	f := &fakeServer{tasks: []models.Task{{ID: "t1", Title: "Server title"}}}
	c := newTestClient(t, f)
	if err := c.Refresh(context.Background(), KindTasks); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	title := "Edited"
	updated, err := c.UpdateTask(context.Background(), "t1", dto.UpdateTaskRequest{Title: &title})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "Edited" {
		t.Fatalf("updated title = %q", updated.Title)
	}
	if got := c.Tasks()[0].Title; got != "Edited" {
		t.Fatalf("cached title = %q", got)
	}
}

func TestFailedUpdateReloadsTruth(t *testing.T) {
	f := &fakeServer{tasks: []models.Task{{ID: "t1", Title: "Server title"}}}
	c := newTestClient(t, f)
	if err := c.Refresh(context.Background(), KindTasks); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	f.mu.Lock()
	f.failPuts = true
	f.mu.Unlock()

	title := "Doomed edit"
	if _, err := c.UpdateTask(context.Background(), "t1", dto.UpdateTaskRequest{Title: &title}); err == nil {
		t.Fatalf("expected error")
	}

	// The optimistic patch must be gone: compensation is reload, not
	// rollback.
	if got := c.Tasks()[0].Title; got != "Server title" {
		t.Fatalf("cached title = %q, want authoritative value", got)
	}
}

func TestCreateTaskReplacesPlaceholder(t *testing.T) {
	f := &fakeServer{}
	c := newTestClient(t, f)

	created, err := c.CreateTask(context.Background(), dto.CreateTaskRequest{Title: "New"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "srv-1" {
		t.Fatalf("created id = %q", created.ID)
	}
	tasks := c.Tasks()
	if len(tasks) != 1 || tasks[0].ID != "srv-1" {
		t.Fatalf("placeholder not replaced: %+v", tasks)
	}
}

func TestEventNamesMapToCollections(t *testing.T) {
	cases := map[string]Kind{
		"task:created":          KindTasks,
		"task:attachment-added": KindTasks,
		"project:deleted":       KindProjects,
		"user:updated":          KindUsers,
		"it-demand:created":     KindDemands,
		"asset:uploaded":        KindAssets,
		"column:created":        KindColumns,
		"notification:created":  KindNotifications,
	}
	for event, want := range cases {
		kind, ok := kindForEvent(event)
		if !ok || kind != want {
			t.Fatalf("kindForEvent(%q) = %q, %v; want %q", event, kind, ok, want)
		}
	}
	if _, ok := kindForEvent("bogus"); ok {
		t.Fatalf("expected unknown event to be ignored")
	}
}

func TestTrackerAccumulatesAndFlushes(t *testing.T) {
	f := &fakeServer{tasks: []models.Task{
		{ID: "t1", Title: "Tracked", Tracking: true, TrackedSeconds: 100},
		{ID: "t2", Title: "Idle"},
	}}
	c := newTestClient(t, f)
	if err := c.Refresh(context.Background(), KindTasks); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	c.TickInterval = 10 * time.Millisecond
	c.FlushEvery = 2

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		c.RunTracker(ctx)
		close(done)
	}()

	time.Sleep(120 * time.Millisecond)
	cancel()
	<-done

	var tracked, idle models.Task
	for _, task := range c.Tasks() {
		switch task.ID {
		case "t1":
			tracked = task
		case "t2":
			idle = task
		}
	}
	if tracked.TrackedSeconds <= 100 {
		t.Fatalf("tracked seconds = %d, want growth past 100", tracked.TrackedSeconds)
	}
	if idle.TrackedSeconds != 0 {
		t.Fatalf("idle task accumulated time: %d", idle.TrackedSeconds)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.puts) == 0 {
		t.Fatalf("tracker never persisted")
	}
	last := f.puts[len(f.puts)-1]
	if last.TrackedSeconds == nil || *last.TrackedSeconds <= 100 {
		t.Fatalf("persisted counter = %+v", last.TrackedSeconds)
	}
}

func TestListenRefetchesOnBroadcast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	go hub.Run()

	f := &fakeServer{tasks: []models.Task{{ID: "t1", Title: "Before"}}}

	r := gin.New()
	r.GET("/ws", hub.Handler())
	r.Any("/tasks", gin.WrapH(f.handler()))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := New(srv.URL, "test-token")
	if err := c.Refresh(context.Background(), KindTasks); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go c.Listen(ctx)
	time.Sleep(50 * time.Millisecond)

	// Server-side change lands, then the broadcast invalidates the cache.
	f.mu.Lock()
	f.tasks[0].Title = "After"
	f.mu.Unlock()
	hub.Broadcast("task:updated", map[string]any{"id": "t1"})

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if tasks := c.Tasks(); len(tasks) == 1 && tasks[0].Title == "After" {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("cache never converged: %+v", c.Tasks())
}
