package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepository is an in-memory repository.Repository.
type mockRepository struct {
	tasks []model.Task

	listErr        error
	createTaskErr  error
	createBlockErr error

	createdTasks  []model.Task
	createdBlocks []model.TimeBlock
	nextID        int
}

func (m *mockRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	if m.createTaskErr != nil {
		return model.Task{}, m.createTaskErr
	}
	m.nextID++
	task := model.Task{
		ID:              fmt.Sprintf("task-%d", m.nextID),
		Title:           opt.Title,
		Description:     opt.Description,
		Project:         opt.Project,
		EstimateMinutes: opt.EstimateMinutes,
		Energy:          opt.Energy,
		Priority:        opt.Priority,
		Deadline:        opt.Deadline,
		Status:          opt.Status,
		Tags:            opt.Tags,
	}
	m.createdTasks = append(m.createdTasks, task)
	return task, nil
}

func (m *mockRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var out []model.Task
	for _, t := range m.tasks {
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.ExcludeStatus != "" && t.Status == opt.ExcludeStatus {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (m *mockRepository) CreateTimeBlock(ctx context.Context, opt repository.CreateTimeBlockOptions) (model.TimeBlock, error) {
	if m.createBlockErr != nil {
		return model.TimeBlock{}, m.createBlockErr
	}
	m.nextID++
	block := model.TimeBlock{
		ID:      fmt.Sprintf("block-%d", m.nextID),
		TaskID:  opt.TaskID,
		Title:   opt.Title,
		Start:   opt.Start,
		End:     opt.End,
		Status:  opt.Status,
		Context: opt.Context,
	}
	m.createdBlocks = append(m.createdBlocks, block)
	return block, nil
}

func (m *mockRepository) ListTimeBlocks(ctx context.Context) ([]model.TimeBlock, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.createdBlocks, nil
}

// mockCalendar records exported events.
type mockCalendar struct {
	events []gcalendar.CreateEventRequest
	fail   bool
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	if m.fail {
		return nil, errors.New("calendar error")
	}
	m.events = append(m.events, req)
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}
