package http

import (
	"github.com/gin-gonic/gin"

	"smart-timetable/pkg/response"
)

// CreateTask godoc
// @Summary     Create a new task
// @Description Creates a task. Status is always "todo" on creation.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createTaskReq true "Task data"
// @Success     200 {object} response.Resp{data=taskResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Store unavailable"
// @Router      /tasks [POST]
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTask: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTaskResp(output.Task))
}

// ListTasks godoc
// @Summary     List tasks
// @Description Returns all stored tasks. Returns an empty list when the store is unavailable.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} response.Resp{data=listTasksResp}
// @Router      /tasks [GET]
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTasks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTasks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListTasksResp(output))
}

// CreateTimeBlock godoc
// @Summary     Create a time block
// @Description Creates a time block directly, optionally linked to a task by id. The link is not verified.
// @Tags        TimeBlocks
// @Accept      json
// @Produce     json
// @Param       body body createTimeBlockReq true "Time block data"
// @Success     200 {object} response.Resp{data=timeBlockResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Store unavailable"
// @Router      /timeblocks [POST]
func (h *handler) CreateTimeBlock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTimeBlockReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateTimeBlock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateTimeBlock: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, newTimeBlockResp(output.Block))
}

// ListTimeBlocks godoc
// @Summary     List time blocks
// @Description Returns all stored time blocks. Returns an empty list when the store is unavailable.
// @Tags        TimeBlocks
// @Produce     json
// @Success     200 {object} response.Resp{data=listTimeBlocksResp}
// @Router      /timeblocks [GET]
func (h *handler) ListTimeBlocks(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListTimeBlocks(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListTimeBlocks: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListTimeBlocksResp(output))
}

// AutoSchedule godoc
// @Summary     Auto-schedule outstanding tasks
// @Description Greedily packs tasks that are not done into the window, creating one planned time block per task. Not idempotent: repeated calls create duplicate blocks.
// @Tags        Scheduling
// @Accept      json
// @Produce     json
// @Param       body body autoScheduleReq false "Optional window; start defaults to now, end to start+8h"
// @Success     200 {object} response.Resp{data=autoScheduleResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Store unavailable"
// @Router      /schedule/auto [POST]
func (h *handler) AutoSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAutoScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.AutoSchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AutoSchedule: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newAutoScheduleResp(output))
}

// Recommend godoc
// @Summary     Recommend what to do next
// @Description Scores outstanding tasks by priority, deadline proximity, and duration, returning the top 3.
// @Tags        Scheduling
// @Produce     json
// @Success     200 {object} response.Resp{data=recommendResp}
// @Router      /recommend [GET]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Recommend(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newRecommendResp(output))
}
