package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-timetable/internal/middleware"
	plannerHTTP "smart-timetable/internal/planner/delivery/http"
	"smart-timetable/pkg/docstore"
	"smart-timetable/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw    middleware.Middleware
	store *docstore.Store

	plannerHandler plannerHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware
	Store      *docstore.Store

	PlannerHandler plannerHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		store:          cfg.Store,
		plannerHandler: cfg.PlannerHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.plannerHandler == nil {
		return errors.New("planner handler is required")
	}
	return nil
}
