package http

import (
	"github.com/gin-gonic/gin"

	"smart-timetable/pkg/response"
)

// mapError translates usecase errors into HTTP responses. Binding and
// validation failures respond 400 before the usecase runs; anything the
// usecase itself returns is a server-side failure, store unavailability
// included.
func (h *handler) mapError(c *gin.Context, err error) {
	response.InternalError(c, err)
}
