package usecase

import (
	"context"
	"errors"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner"
	repo "smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/docstore"
)

// CreateTask persists a new Task. Status is always "todo" on creation,
// whatever the caller sent.
func (uc *implUseCase) CreateTask(ctx context.Context, input planner.CreateTaskInput) (planner.CreateTaskOutput, error) {
	task, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		Title:           input.Title,
		Description:     input.Description,
		Project:         input.Project,
		EstimateMinutes: input.EstimateMinutes,
		Energy:          input.Energy,
		Priority:        input.Priority,
		Deadline:        input.Deadline,
		Status:          model.TaskStatusTodo,
		Tags:            input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTask: %v", err)
		return planner.CreateTaskOutput{}, uc.storeErr(err)
	}

	return planner.CreateTaskOutput{Task: task}, nil
}

// ListTasks returns all tasks. An unavailable store yields an empty list
// rather than an error.
func (uc *implUseCase) ListTasks(ctx context.Context) (planner.ListTasksOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{})
	if err != nil {
		if errors.Is(err, docstore.ErrUnavailable) {
			return planner.ListTasksOutput{Tasks: []model.Task{}}, nil
		}
		uc.l.Errorf(ctx, "uc.ListTasks: %v", err)
		return planner.ListTasksOutput{}, err
	}

	return planner.ListTasksOutput{Tasks: tasks}, nil
}

// storeErr maps the adapter's unavailable sentinel to the domain error.
func (uc *implUseCase) storeErr(err error) error {
	if errors.Is(err, docstore.ErrUnavailable) {
		return planner.ErrStoreUnavailable
	}
	return err
}
