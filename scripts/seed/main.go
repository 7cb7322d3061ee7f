// scripts/seed/main.go
//
// Seeds the document store with a handful of demo tasks so the scheduler
// and recommender have something to chew on during local development.
//
// Usage:
//   go run scripts/seed/main.go [path-to-sqlite-db]

package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner/repository"
	plannerRepo "smart-timetable/internal/planner/repository/docstore"
	"smart-timetable/pkg/docstore"
	"smart-timetable/pkg/log"
)

func main() {
	path := "data/smart-timetable.db"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	l := log.Init(log.ZapConfig{Level: "info", Mode: "development", Encoding: "console"})

	store, err := docstore.Open(docstore.Config{
		Driver:      "sqlite",
		Path:        path,
		BusyTimeout: 5 * time.Second,
	}, l)
	if err != nil {
		stdlog.Fatalf("Failed to open store at %q: %v", path, err)
	}
	defer store.Close()

	repo := plannerRepo.New(store, l)
	ctx := context.Background()

	now := time.Now().UTC()
	in2h := now.Add(2 * time.Hour)
	in20h := now.Add(20 * time.Hour)
	in3d := now.Add(72 * time.Hour)

	seed := []repository.CreateTaskOptions{
		{
			Title:           "Fix production login outage",
			Project:         "auth",
			EstimateMinutes: 90,
			Energy:          "deep",
			Priority:        model.PriorityUrgent,
			Deadline:        &in2h,
			Status:          model.TaskStatusTodo,
			Tags:            []string{"incident"},
		},
		{
			Title:           "Review quarterly budget draft",
			Project:         "finance",
			EstimateMinutes: 45,
			Energy:          "shallow",
			Priority:        model.PriorityHigh,
			Deadline:        &in20h,
			Status:          model.TaskStatusTodo,
			Tags:            []string{"review", "finance"},
		},
		{
			Title:           "Write onboarding guide",
			Project:         "docs",
			EstimateMinutes: 60,
			Priority:        model.PriorityMedium,
			Deadline:        &in3d,
			Status:          model.TaskStatusTodo,
			Tags:            []string{"writing"},
		},
		{
			Title:           "Clear email backlog",
			EstimateMinutes: 30,
			Priority:        model.PriorityLow,
			Status:          model.TaskStatusTodo,
			Tags:            []string{},
		},
	}

	for _, opt := range seed {
		task, err := repo.CreateTask(ctx, opt)
		if err != nil {
			stdlog.Fatalf("Failed to seed task %q: %v", opt.Title, err)
		}
		fmt.Printf("seeded task %s  %q\n", task.ID, task.Title)
	}

	fmt.Printf("done: %d tasks written to %s\n", len(seed), path)
}
