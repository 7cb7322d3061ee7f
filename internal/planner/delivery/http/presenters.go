package http

import (
	"time"

	"smart-timetable/internal/model"
	"smart-timetable/internal/planner"
)

// --- Request DTOs ---

type createTaskReq struct {
	Title           string     `json:"title"            binding:"required,min=1"`
	Description     string     `json:"description"`
	Project         string     `json:"project"`
	EstimateMinutes *int       `json:"estimate_minutes" binding:"omitempty,gte=5,lte=480"`
	Energy          string     `json:"energy"`
	Priority        string     `json:"priority"         binding:"omitempty,oneof=low medium high urgent"`
	Deadline        *time.Time `json:"deadline"`
	Tags            []string   `json:"tags"`
}

func (r createTaskReq) validate() error { return nil }

func (r createTaskReq) toInput() planner.CreateTaskInput {
	estimate := model.DefaultEstimateMinutes
	if r.EstimateMinutes != nil {
		estimate = *r.EstimateMinutes
	}
	priority := r.Priority
	if priority == "" {
		priority = model.DefaultPriority
	}
	deadline := r.Deadline
	if deadline != nil {
		utc := deadline.UTC()
		deadline = &utc
	}
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return planner.CreateTaskInput{
		Title:           r.Title,
		Description:     r.Description,
		Project:         r.Project,
		EstimateMinutes: estimate,
		Energy:          r.Energy,
		Priority:        priority,
		Deadline:        deadline,
		Tags:            tags,
	}
}

// ---

type createTimeBlockReq struct {
	TaskID  string    `json:"task_id"`
	Title   string    `json:"title"  binding:"required,min=1"`
	Start   time.Time `json:"start"  binding:"required"`
	End     time.Time `json:"end"    binding:"required"`
	Status  string    `json:"status" binding:"omitempty,oneof=planned in_progress completed slipped"`
	Context string    `json:"context"`
}

func (r createTimeBlockReq) validate() error { return nil }

func (r createTimeBlockReq) toInput() planner.CreateTimeBlockInput {
	return planner.CreateTimeBlockInput{
		TaskID:  r.TaskID,
		Title:   r.Title,
		Start:   r.Start.UTC(),
		End:     r.End.UTC(),
		Status:  r.Status,
		Context: r.Context,
	}
}

// ---

type autoScheduleReq struct {
	Start *time.Time `json:"start"`
	End   *time.Time `json:"end"`
}

func (r autoScheduleReq) validate() error { return nil }

func (r autoScheduleReq) toInput() planner.AutoScheduleInput {
	return planner.AutoScheduleInput{
		WindowStart: r.Start,
		WindowEnd:   r.End,
	}
}

// --- Response DTOs ---

type taskResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Project         string     `json:"project,omitempty"`
	EstimateMinutes int        `json:"estimate_minutes"`
	Energy          string     `json:"energy,omitempty"`
	Priority        string     `json:"priority"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Status          string     `json:"status"`
	Tags            []string   `json:"tags"`
}

func newTaskResp(t model.Task) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Project:         t.Project,
		EstimateMinutes: t.EstimateMinutes,
		Energy:          t.Energy,
		Priority:        t.Priority,
		Deadline:        t.Deadline,
		Status:          t.Status,
		Tags:            tags,
	}
}

type listTasksResp struct {
	Tasks []taskResp `json:"tasks"`
}

func (h *handler) newListTasksResp(out planner.ListTasksOutput) listTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listTasksResp{Tasks: tasks}
}

type timeBlockResp struct {
	ID      string    `json:"id"`
	TaskID  string    `json:"task_id,omitempty"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Status  string    `json:"status"`
	Context string    `json:"context,omitempty"`
}

func newTimeBlockResp(b model.TimeBlock) timeBlockResp {
	return timeBlockResp{
		ID:      b.ID,
		TaskID:  b.TaskID,
		Title:   b.Title,
		Start:   b.Start,
		End:     b.End,
		Status:  b.Status,
		Context: b.Context,
	}
}

type listTimeBlocksResp struct {
	Blocks []timeBlockResp `json:"timeblocks"`
}

func (h *handler) newListTimeBlocksResp(out planner.ListTimeBlocksOutput) listTimeBlocksResp {
	blocks := make([]timeBlockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		blocks[i] = newTimeBlockResp(b)
	}
	return listTimeBlocksResp{Blocks: blocks}
}

type autoScheduleResp struct {
	Blocks []timeBlockResp `json:"blocks"`
}

func (h *handler) newAutoScheduleResp(out planner.AutoScheduleOutput) autoScheduleResp {
	blocks := make([]timeBlockResp, len(out.Blocks))
	for i, b := range out.Blocks {
		blocks[i] = newTimeBlockResp(b)
	}
	return autoScheduleResp{Blocks: blocks}
}

type taskSummaryResp struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	EstimateMinutes int        `json:"estimate_minutes"`
	Priority        string     `json:"priority"`
	Deadline        *time.Time `json:"deadline,omitempty"`
}

type suggestionResp struct {
	Task  taskSummaryResp `json:"task"`
	Score float64         `json:"score"`
}

type recommendResp struct {
	Now         time.Time        `json:"now"`
	Suggestions []suggestionResp `json:"suggestions"`
}

func (h *handler) newRecommendResp(out planner.RecommendOutput) recommendResp {
	suggestions := make([]suggestionResp, len(out.Suggestions))
	for i, s := range out.Suggestions {
		suggestions[i] = suggestionResp{
			Task: taskSummaryResp{
				ID:              s.Task.ID,
				Title:           s.Task.Title,
				EstimateMinutes: s.Task.EstimateMinutes,
				Priority:        s.Task.Priority,
				Deadline:        s.Task.Deadline,
			},
			Score: s.Score,
		}
	}
	return recommendResp{
		Now:         out.Now,
		Suggestions: suggestions,
	}
}
