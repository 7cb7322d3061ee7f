package model

import "time"

// Task is a unit of work with an estimate, a priority, and an optional
// deadline. The id is assigned by the store on creation and immutable
// thereafter.
type Task struct {
	ID              string
	Title           string
	Description     string
	Project         string
	EstimateMinutes int        // constrained to [5,480]
	Energy          string     // low | medium | high (advisory, not enforced)
	Priority        string     // low | medium | high | urgent
	Deadline        *time.Time // nil means no deadline; UTC otherwise
	Status          string     // todo | in_progress | done
	Tags            []string   // insertion order preserved
}

// Task priority values.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Task status values.
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Defaults applied when fields are omitted on creation.
const (
	DefaultEstimateMinutes = 30
	DefaultPriority        = PriorityMedium
)

// Estimate bounds in minutes.
const (
	MinEstimateMinutes = 5
	MaxEstimateMinutes = 480
)
