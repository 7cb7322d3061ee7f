package docstore

import (
	"context"
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner/repository"
	store "smart-timetable/pkg/docstore"
)

// CreateTimeBlock inserts a new time block document and returns it with the
// generated id.
func (r *implRepository) CreateTimeBlock(ctx context.Context, opt repository.CreateTimeBlockOptions) (model.TimeBlock, error) {
	doc := store.Document{
		"task_id": opt.TaskID,
		"title":   opt.Title,
		"start":   opt.Start.UTC().Format(time.RFC3339),
		"end":     opt.End.UTC().Format(time.RFC3339),
		"status":  opt.Status,
		"context": opt.Context,
	}

	id, err := r.store.Insert(ctx, collectionTimeBlock, doc)
	if err != nil {
		return model.TimeBlock{}, err
	}

	doc[store.KeyField] = id
	return timeBlockFromDocument(doc), nil
}

// ListTimeBlocks returns all time blocks in insertion order.
func (r *implRepository) ListTimeBlocks(ctx context.Context) ([]model.TimeBlock, error) {
	docs, err := r.store.Find(ctx, collectionTimeBlock)
	if err != nil {
		return nil, err
	}

	blocks := make([]model.TimeBlock, 0, len(docs))
	for _, doc := range docs {
		blocks = append(blocks, timeBlockFromDocument(doc))
	}
	return blocks, nil
}

func timeBlockFromDocument(doc store.Document) model.TimeBlock {
	block := model.TimeBlock{
		ID:      docString(doc, store.KeyField, ""),
		TaskID:  docString(doc, "task_id", ""),
		Title:   docString(doc, "title", ""),
		Status:  docString(doc, "status", model.BlockStatusPlanned),
		Context: docString(doc, "context", ""),
	}
	if t := docTime(doc, "start"); t != nil {
		block.Start = *t
	}
	if t := docTime(doc, "end"); t != nil {
		block.End = *t
	}
	return block
}
