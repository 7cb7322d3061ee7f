package usecase

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner"
	repo "smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/docstore"
)

// Recommend scores every outstanding task and returns the top suggestions.
//
// score = priority weight + urgency bonus - duration penalty, rounded to two
// decimals. The urgency bonus buckets remaining time to the deadline
// (<4h: 3, <24h: 2, <72h: 1); an already-passed deadline lands in the <4h
// bucket since the remaining time is negative. Ties keep store order.
//
// An unavailable store yields an empty suggestion list rather than an error.
func (uc *implUseCase) Recommend(ctx context.Context) (planner.RecommendOutput, error) {
	now := time.Now().UTC()

	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{ExcludeStatus: model.TaskStatusDone})
	if err != nil {
		if errors.Is(err, docstore.ErrUnavailable) {
			return planner.RecommendOutput{Now: now, Suggestions: []planner.Suggestion{}}, nil
		}
		uc.l.Errorf(ctx, "uc.Recommend ListTasks: %v", err)
		return planner.RecommendOutput{}, err
	}

	suggestions := make([]planner.Suggestion, 0, len(tasks))
	for _, t := range tasks {
		suggestions = append(suggestions, planner.Suggestion{
			Task: planner.TaskSummary{
				ID:              t.ID,
				Title:           t.Title,
				EstimateMinutes: t.EstimateMinutes,
				Priority:        t.Priority,
				Deadline:        t.Deadline,
			},
			Score: scoreTask(t, now),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > uc.cfg.SuggestLimit {
		suggestions = suggestions[:uc.cfg.SuggestLimit]
	}

	return planner.RecommendOutput{Now: now, Suggestions: suggestions}, nil
}

func scoreTask(t model.Task, now time.Time) float64 {
	base := priorityWeight(t.Priority)

	var urgencyBonus float64
	if t.Deadline != nil {
		hoursToDeadline := t.Deadline.Sub(now).Hours()
		switch {
		case hoursToDeadline < 4:
			urgencyBonus = 3
		case hoursToDeadline < 24:
			urgencyBonus = 2
		case hoursToDeadline < 72:
			urgencyBonus = 1
		}
	}

	durationPenalty := math.Max(0, float64(t.EstimateMinutes-30)/30) * 0.2

	score := base + urgencyBonus - durationPenalty
	return math.Round(score*100) / 100
}
