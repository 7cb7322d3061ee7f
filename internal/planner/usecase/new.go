package usecase

import (
	"context"

	"smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/gcalendar"
	"smart-timetable/pkg/log"
)

// Calendar is the slice of the Google Calendar client the scheduler needs to
// mirror planned blocks as events.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config tunes the scheduling and recommendation heuristics.
type Config struct {
	WindowHours   int    // default auto-schedule window length (default 8)
	BufferMinutes int    // gap between consecutive blocks (default 5)
	SuggestLimit  int    // max recommendations returned (default 3)
	CalendarID    string // target calendar for mirrored events ("" = primary)
	Timezone      string // event timezone (default UTC)
}

// implUseCase is the private implementation of planner.UseCase.
type implUseCase struct {
	repo     repository.Repository
	calendar Calendar // nil when calendar export is not configured
	cfg      Config
	l        log.Logger
}

// New creates a new planner UseCase implementation.
func New(repo repository.Repository, calendar Calendar, cfg Config, l log.Logger) *implUseCase {
	if cfg.WindowHours <= 0 {
		cfg.WindowHours = defaultWindowHours
	}
	if cfg.BufferMinutes <= 0 {
		cfg.BufferMinutes = defaultBufferMinutes
	}
	if cfg.SuggestLimit <= 0 {
		cfg.SuggestLimit = defaultSuggestLimit
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	return &implUseCase{
		repo:     repo,
		calendar: calendar,
		cfg:      cfg,
		l:        l,
	}
}
