package docstore

import (
	"context"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner/repository"
	store "smart-timetable/pkg/docstore"
)

// CreateTask inserts a new task document and returns it with the generated id.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}

	doc := store.Document{
		"title":            opt.Title,
		"description":      opt.Description,
		"project":          opt.Project,
		"estimate_minutes": opt.EstimateMinutes,
		"energy":           opt.Energy,
		"priority":         opt.Priority,
		"deadline":         timeField(opt.Deadline),
		"status":           opt.Status,
		"tags":             tags,
	}

	id, err := r.store.Insert(ctx, collectionTask, doc)
	if err != nil {
		return model.Task{}, err
	}

	doc[store.KeyField] = id
	return taskFromDocument(doc), nil
}

// ListTasks returns tasks matching the options, in insertion order.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var filters []store.Filter
	if opt.Status != "" {
		filters = append(filters, store.Eq("status", opt.Status))
	}
	if opt.ExcludeStatus != "" {
		filters = append(filters, store.Neq("status", opt.ExcludeStatus))
	}

	docs, err := r.store.Find(ctx, collectionTask, filters...)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(docs))
	for _, doc := range docs {
		tasks = append(tasks, taskFromDocument(doc))
	}
	return tasks, nil
}

// taskFromDocument maps a stored document to the domain model. The
// store-native key becomes the task id here and nowhere else.
func taskFromDocument(doc store.Document) model.Task {
	return model.Task{
		ID:              docString(doc, store.KeyField, ""),
		Title:           docString(doc, "title", ""),
		Description:     docString(doc, "description", ""),
		Project:         docString(doc, "project", ""),
		EstimateMinutes: docInt(doc, "estimate_minutes", model.DefaultEstimateMinutes),
		Energy:          docString(doc, "energy", ""),
		Priority:        docString(doc, "priority", model.DefaultPriority),
		Deadline:        docTime(doc, "deadline"),
		Status:          docString(doc, "status", model.TaskStatusTodo),
		Tags:            docStrings(doc, "tags"),
	}
}
