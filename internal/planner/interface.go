package planner

import "context"

// UseCase defines the business logic interface for the planner domain.
type UseCase interface {
	// CreateTask persists a new task with status "todo".
	CreateTask(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)

	// ListTasks returns all stored tasks. Degrades to an empty list when the
	// store is unavailable.
	ListTasks(ctx context.Context) (ListTasksOutput, error)

	// CreateTimeBlock persists a time block created directly through the API.
	CreateTimeBlock(ctx context.Context, input CreateTimeBlockInput) (CreateTimeBlockOutput, error)

	// ListTimeBlocks returns all stored time blocks. Degrades to an empty
	// list when the store is unavailable.
	ListTimeBlocks(ctx context.Context) (ListTimeBlocksOutput, error)

	// AutoSchedule greedily packs outstanding tasks into the window and
	// persists one planned time block per scheduled task.
	AutoSchedule(ctx context.Context, input AutoScheduleInput) (AutoScheduleOutput, error)

	// Recommend scores outstanding tasks and returns the top suggestions.
	Recommend(ctx context.Context) (RecommendOutput, error)
}
