package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateTaskReq binds and validates the create task request body.
func (h *handler) processCreateTaskReq(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processCreateTimeBlockReq binds and validates the create time block
// request body.
func (h *handler) processCreateTimeBlockReq(c *gin.Context) (createTimeBlockReq, error) {
	var req createTimeBlockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processAutoScheduleReq binds the optional scheduling window. An empty body
// is valid and means "use defaults".
func (h *handler) processAutoScheduleReq(c *gin.Context) (autoScheduleReq, error) {
	var req autoScheduleReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
