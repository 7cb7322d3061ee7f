package repository

import "time"

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Project         string
	EstimateMinutes int
	Energy          string
	Priority        string
	Deadline        *time.Time
	Status          string
	Tags            []string
}

// ListTasksOptions holds filter parameters for listing Tasks.
// Empty fields are ignored.
type ListTasksOptions struct {
	Status        string // equality filter on status
	ExcludeStatus string // not-equal filter on status
}

// CreateTimeBlockOptions holds parameters for inserting a new TimeBlock.
type CreateTimeBlockOptions struct {
	TaskID  string
	Title   string
	Start   time.Time
	End     time.Time
	Status  string
	Context string
}
