package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner"
	repo "smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/gcalendar"
)

// AutoSchedule greedily packs outstanding tasks into the window.
//
// Tasks are ordered by priority rank, then earliest deadline (no deadline
// sorts last), then shortest estimate. The walk stops at the first task whose
// block would overrun the window end; shorter tasks further down the order
// are not reconsidered. Each scheduled task becomes one planned TimeBlock,
// with the configured buffer between consecutive blocks.
//
// The operation is not idempotent: a second call with the same inputs
// creates duplicate blocks. Task records are never modified.
func (uc *implUseCase) AutoSchedule(ctx context.Context, input planner.AutoScheduleInput) (planner.AutoScheduleOutput, error) {
	now := time.Now().UTC()

	windowStart := now
	if input.WindowStart != nil {
		windowStart = input.WindowStart.UTC()
	}
	windowEnd := windowStart.Add(time.Duration(uc.cfg.WindowHours) * time.Hour)
	if input.WindowEnd != nil {
		windowEnd = input.WindowEnd.UTC()
	}

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{ExcludeStatus: model.TaskStatusDone})
	if err != nil {
		uc.l.Errorf(ctx, "uc.AutoSchedule ListTasks: %v", err)
		return planner.AutoScheduleOutput{}, uc.storeErr(err)
	}

	sortForSchedule(tasks)

	buffer := time.Duration(uc.cfg.BufferMinutes) * time.Minute
	cursor := windowStart
	blocks := make([]model.TimeBlock, 0, len(tasks))

	for _, t := range tasks {
		blockStart := cursor
		blockEnd := blockStart.Add(time.Duration(t.EstimateMinutes) * time.Minute)
		if blockEnd.After(windowEnd) {
			break
		}

		block, err := uc.repo.CreateTimeBlock(ctx, repo.CreateTimeBlockOptions{
			TaskID:  t.ID,
			Title:   t.Title,
			Start:   blockStart,
			End:     blockEnd,
			Status:  model.BlockStatusPlanned,
			Context: blockContext(t),
		})
		if err != nil {
			// Blocks persisted before the failure stay committed; there is
			// no rollback.
			uc.l.Errorf(ctx, "uc.AutoSchedule CreateTimeBlock: %v", err)
			return planner.AutoScheduleOutput{}, uc.storeErr(err)
		}

		uc.exportToCalendar(ctx, block)

		blocks = append(blocks, block)
		cursor = blockEnd.Add(buffer)
	}

	return planner.AutoScheduleOutput{Blocks: blocks}, nil
}

// sortForSchedule orders tasks by (priority rank, deadline, estimate),
// all ascending.
func sortForSchedule(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := priorityRank(tasks[i].Priority), priorityRank(tasks[j].Priority)
		if ri != rj {
			return ri < rj
		}
		di, dj := deadlineOrMax(tasks[i]), deadlineOrMax(tasks[j])
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return tasks[i].EstimateMinutes < tasks[j].EstimateMinutes
	})
}

func deadlineOrMax(t model.Task) time.Time {
	if t.Deadline != nil {
		return *t.Deadline
	}
	return deadlineMax
}

// blockContext derives the block's context label: the task's project if set,
// else its tags joined by comma, else empty.
func blockContext(t model.Task) string {
	if t.Project != "" {
		return t.Project
	}
	return strings.Join(t.Tags, ",")
}

// exportToCalendar mirrors a planned block as a Google Calendar event when a
// calendar client is configured. Export failures never fail scheduling.
func (uc *implUseCase) exportToCalendar(ctx context.Context, block model.TimeBlock) {
	if uc.calendar == nil {
		return
	}

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.cfg.CalendarID,
		Summary:     block.Title,
		Description: block.Context,
		StartTime:   block.Start,
		EndTime:     block.End,
		Timezone:    uc.cfg.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "uc.AutoSchedule calendar export for block %s: %v", block.ID, err)
	}
}
