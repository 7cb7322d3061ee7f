package usecase

import (
	"context"
	"errors"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner"
	repo "smart-timetable/internal/planner/repository"
	"smart-timetable/pkg/docstore"
)

// CreateTimeBlock persists a time block created directly through the API.
// start < end is expected but not enforced.
func (uc *implUseCase) CreateTimeBlock(ctx context.Context, input planner.CreateTimeBlockInput) (planner.CreateTimeBlockOutput, error) {
	status := input.Status
	if status == "" {
		status = model.BlockStatusPlanned
	}

	block, err := uc.repo.CreateTimeBlock(ctx, repo.CreateTimeBlockOptions{
		TaskID:  input.TaskID,
		Title:   input.Title,
		Start:   input.Start,
		End:     input.End,
		Status:  status,
		Context: input.Context,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateTimeBlock: %v", err)
		return planner.CreateTimeBlockOutput{}, uc.storeErr(err)
	}

	return planner.CreateTimeBlockOutput{Block: block}, nil
}

// ListTimeBlocks returns all time blocks. An unavailable store yields an
// empty list rather than an error.
func (uc *implUseCase) ListTimeBlocks(ctx context.Context) (planner.ListTimeBlocksOutput, error) {
	blocks, err := uc.repo.ListTimeBlocks(ctx)
	if err != nil {
		if errors.Is(err, docstore.ErrUnavailable) {
			return planner.ListTimeBlocksOutput{Blocks: []model.TimeBlock{}}, nil
		}
		uc.l.Errorf(ctx, "uc.ListTimeBlocks: %v", err)
		return planner.ListTimeBlocksOutput{}, err
	}

	return planner.ListTimeBlocksOutput{Blocks: blocks}, nil
}
