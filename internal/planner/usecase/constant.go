package usecase

import (
	"time"

	"smart-timetable/internal/model"
)

const (
	defaultWindowHours   = 8
	defaultBufferMinutes = 5
	defaultSuggestLimit  = 3
)

// deadlineMax stands in for "no deadline" when sorting: tasks without one
// sort last among equal priorities.
var deadlineMax = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// priorityRank orders priorities for scheduling: lower schedules first.
// Unrecognized values rank as medium.
func priorityRank(priority string) int {
	switch priority {
	case model.PriorityUrgent:
		return 0
	case model.PriorityHigh:
		return 1
	case model.PriorityLow:
		return 3
	default:
		return 2
	}
}

// priorityWeight is the recommendation base score per priority.
// Unrecognized values weigh as medium.
func priorityWeight(priority string) float64 {
	switch priority {
	case model.PriorityUrgent:
		return 4
	case model.PriorityHigh:
		return 3
	case model.PriorityLow:
		return 1
	default:
		return 2
	}
}
