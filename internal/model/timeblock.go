package model

import "time"

// TimeBlock is a scheduled calendar interval, optionally linked to a Task.
// TaskID is a weak reference: the linked task may not exist or may change
// later, and no referential integrity is enforced.
type TimeBlock struct {
	ID      string
	TaskID  string // optional; empty means unlinked
	Title   string // copied from the source task at scheduling time
	Start   time.Time
	End     time.Time
	Status  string // planned | in_progress | completed | slipped
	Context string // optional label, derived from the task's project or tags
}

// TimeBlock status values.
const (
	BlockStatusPlanned    = "planned"
	BlockStatusInProgress = "in_progress"
	BlockStatusCompleted  = "completed"
	BlockStatusSlipped    = "slipped"
)
