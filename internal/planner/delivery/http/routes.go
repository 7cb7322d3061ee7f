package http

import (
	"github.com/gin-gonic/gin"

	"smart-timetable/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. All planner
// routes share the per-client rate limit.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	limited := mw.RateLimit()

	tasks := rg.Group("/tasks")
	{
		tasks.GET("", limited, h.ListTasks)
		tasks.POST("", limited, h.CreateTask)
	}

	blocks := rg.Group("/timeblocks")
	{
		blocks.GET("", limited, h.ListTimeBlocks)
		blocks.POST("", limited, h.CreateTimeBlock)
	}

	rg.POST("/schedule/auto", limited, h.AutoSchedule)
	rg.GET("/recommend", limited, h.Recommend)
}
