package planner

import (
	"time"

	"smart-timetable/internal/model"
)

// --- UseCase Inputs ---

// CreateTaskInput carries a validated task creation request. Defaults for
// estimate and priority are already applied by the delivery layer.
type CreateTaskInput struct {
	Title           string
	Description     string
	Project         string
	EstimateMinutes int
	Energy          string
	Priority        string
	Deadline        *time.Time
	Tags            []string
}

// CreateTimeBlockInput carries a direct time-block creation request.
type CreateTimeBlockInput struct {
	TaskID  string
	Title   string
	Start   time.Time
	End     time.Time
	Status  string
	Context string
}

// AutoScheduleInput is the optional scheduling window. A nil WindowStart
// defaults to the current UTC time; a nil WindowEnd defaults to
// WindowStart plus the configured window.
type AutoScheduleInput struct {
	WindowStart *time.Time
	WindowEnd   *time.Time
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
}

type CreateTimeBlockOutput struct {
	Block model.TimeBlock
}

type ListTimeBlocksOutput struct {
	Blocks []model.TimeBlock
}

type AutoScheduleOutput struct {
	Blocks []model.TimeBlock
}

// TaskSummary is the task digest attached to a recommendation.
type TaskSummary struct {
	ID              string
	Title           string
	EstimateMinutes int
	Priority        string
	Deadline        *time.Time
}

// Suggestion pairs a task summary with its computed score.
type Suggestion struct {
	Task  TaskSummary
	Score float64
}

// RecommendOutput is the ranked "what to do next" result.
type RecommendOutput struct {
	Now         time.Time
	Suggestions []Suggestion
}
