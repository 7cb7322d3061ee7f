package docstore

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner/repository"
	store "smart-timetable/pkg/docstore"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newTestRepository(t *testing.T) *implRepository {
	t.Helper()
	s, err := store.Open(store.Config{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "planner.db"),
	}, nopLogger{})
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return New(s, nopLogger{})
}

func TestTaskRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deadline := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:           "write launch notes",
		Description:     "cover the rollout steps",
		Project:         "launch",
		EstimateMinutes: 45,
		Energy:          "deep",
		Priority:        model.PriorityHigh,
		Deadline:        &deadline,
		Status:          model.TaskStatusTodo,
		Tags:            []string{"writing", "focus"},
	})
	if err != nil {
		t.Fatalf("create task error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("list tasks error: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	got := tasks[0]

	if got.ID != created.ID {
		t.Errorf("id mismatch: created %q, listed %q", created.ID, got.ID)
	}
	if got.Title != "write launch notes" ||
		got.Description != "cover the rollout steps" ||
		got.Project != "launch" ||
		got.EstimateMinutes != 45 ||
		got.Energy != "deep" ||
		got.Priority != model.PriorityHigh ||
		got.Status != model.TaskStatusTodo {
		t.Errorf("field mismatch after round trip: %+v", got)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Errorf("deadline mismatch: %v", got.Deadline)
	}
	if !reflect.DeepEqual(got.Tags, []string{"writing", "focus"}) {
		t.Errorf("tags mismatch: %v", got.Tags)
	}
}

func TestCreateTaskReturnsTags(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:           "write launch notes",
		EstimateMinutes: 45,
		Priority:        model.PriorityHigh,
		Status:          model.TaskStatusTodo,
		Tags:            []string{"writing", "focus"},
	})
	if err != nil {
		t.Fatalf("create task error: %v", err)
	}

	// The creation response must carry the tags as supplied, not just the
	// stored record a later list returns.
	if !reflect.DeepEqual(created.Tags, []string{"writing", "focus"}) {
		t.Errorf("creation response tags mismatch: %#v", created.Tags)
	}
}

func TestTaskNilFieldsRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:           "quick errand",
		EstimateMinutes: 30,
		Priority:        model.DefaultPriority,
		Status:          model.TaskStatusTodo,
	})
	if err != nil {
		t.Fatalf("create task error: %v", err)
	}
	if created.Deadline != nil {
		t.Errorf("expected nil deadline, got %v", created.Deadline)
	}
	if created.Tags == nil || len(created.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", created.Tags)
	}

	tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("list tasks error: %v", err)
	}
	if tasks[0].Deadline != nil {
		t.Errorf("expected nil deadline after round trip, got %v", tasks[0].Deadline)
	}
	if tasks[0].Tags == nil {
		t.Errorf("expected non-nil tags after round trip")
	}
}

func TestListTasksStatusFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	statuses := []string{model.TaskStatusTodo, model.TaskStatusDone, model.TaskStatusInProgress}
	for i, status := range statuses {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:           "task",
			EstimateMinutes: 30,
			Priority:        model.DefaultPriority,
			Status:          status,
		})
		if err != nil {
			t.Fatalf("create task %d error: %v", i, err)
		}
	}

	done, err := repo.ListTasks(ctx, repository.ListTasksOptions{Status: model.TaskStatusDone})
	if err != nil {
		t.Fatalf("list tasks error: %v", err)
	}
	if len(done) != 1 || done[0].Status != model.TaskStatusDone {
		t.Fatalf("status filter: expected 1 done task, got %+v", done)
	}

	open, err := repo.ListTasks(ctx, repository.ListTasksOptions{ExcludeStatus: model.TaskStatusDone})
	if err != nil {
		t.Fatalf("list tasks error: %v", err)
	}
	if len(open) != 2 {
		t.Fatalf("exclude filter: expected 2 open tasks, got %d", len(open))
	}
	for _, task := range open {
		if task.Status == model.TaskStatusDone {
			t.Errorf("exclude filter returned a done task")
		}
	}
}

func TestTimeBlockRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(45 * time.Minute)
	created, err := repo.CreateTimeBlock(ctx, repository.CreateTimeBlockOptions{
		TaskID:  "task-1",
		Title:   "write launch notes",
		Start:   start,
		End:     end,
		Status:  model.BlockStatusPlanned,
		Context: "launch",
	})
	if err != nil {
		t.Fatalf("create time block error: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}

	blocks, err := repo.ListTimeBlocks(ctx)
	if err != nil {
		t.Fatalf("list time blocks error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	got := blocks[0]

	if got.ID != created.ID || got.TaskID != "task-1" || got.Title != "write launch notes" ||
		got.Status != model.BlockStatusPlanned || got.Context != "launch" {
		t.Errorf("field mismatch after round trip: %+v", got)
	}
	if !got.Start.Equal(start) || !got.End.Equal(end) {
		t.Errorf("time mismatch: start %v end %v", got.Start, got.End)
	}
}

func TestRepositoryUnavailableStore(t *testing.T) {
	repo := New(nil, nopLogger{})
	ctx := context.Background()

	if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "a"}); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable from CreateTask, got %v", err)
	}
	if _, err := repo.ListTasks(ctx, repository.ListTasksOptions{}); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable from ListTasks, got %v", err)
	}
	if _, err := repo.ListTimeBlocks(ctx); !errors.Is(err, store.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable from ListTimeBlocks, got %v", err)
	}
}
