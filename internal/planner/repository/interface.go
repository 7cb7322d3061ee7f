package repository

import (
	"context"

	"smart-timetable/internal/model"
)

// Repository is the composed data access interface for the planner domain.
type Repository interface {
	TaskRepository
	TimeBlockRepository
}

// TaskRepository defines data access for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
}

// TimeBlockRepository defines data access for the TimeBlock entity.
type TimeBlockRepository interface {
	CreateTimeBlock(ctx context.Context, opt CreateTimeBlockOptions) (model.TimeBlock, error)
	ListTimeBlocks(ctx context.Context) ([]model.TimeBlock, error)
}
