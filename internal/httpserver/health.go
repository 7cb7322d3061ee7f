package httpserver

import (
	"github.com/gin-gonic/gin"

	"smart-timetable/pkg/response"
)

// Service identity constants, single source for version and name.
const (
	ServiceMessage = "Smart Timetable & Productivity API running"
	ServiceVersion = "1.0.0"
	ServiceName    = "smart-timetable"
)

// root handles the liveness message at the API root
// @Summary Liveness message
// @Description Confirms the API is running
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router / [get]
func (srv *HTTPServer) root(c *gin.Context) {
	response.OK(c, gin.H{
		"message": ServiceMessage,
	})
}

// storeDiagnostics reports record store connectivity
// @Summary Store connectivity diagnostics
// @Description Reports whether the document store is reachable and which collections exist
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /test [get]
func (srv *HTTPServer) storeDiagnostics(c *gin.Context) {
	diag := gin.H{
		"backend":     "running",
		"store":       "not available",
		"collections": []string{},
	}

	if srv.store.Available() {
		diag["store"] = "available"
		cols, err := srv.store.Collections(c.Request.Context())
		if err != nil {
			diag["store"] = "connected but error: " + err.Error()
		} else {
			diag["store"] = "connected"
			if cols == nil {
				cols = []string{}
			}
			diag["collections"] = cols
		}
	}

	response.OK(c, diag)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": ServiceVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"version": ServiceVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags System
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": ServiceVersion,
		"service": ServiceName,
	})
}
