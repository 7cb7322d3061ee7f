package http

import (
	"github.com/gin-gonic/gin"

	"smart-timetable/internal/planner"
	"smart-timetable/pkg/log"
)

// Handler is the public interface for the planner HTTP delivery layer.
type Handler interface {
	CreateTask(c *gin.Context)
	ListTasks(c *gin.Context)
	CreateTimeBlock(c *gin.Context)
	ListTimeBlocks(c *gin.Context)
	AutoSchedule(c *gin.Context)
	Recommend(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planner.UseCase
}

// New creates a new HTTP handler for the planner domain.
func New(l log.Logger, uc planner.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
