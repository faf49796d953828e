package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/doodlesbykumbi/egeria-in-go/pkg/audit"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/config"
	"github.com/doodlesbykumbi/egeria-in-go/pkg/harvest"
)

// Harvester is the running harvest the server reports on
type Harvester interface {
	Status() []harvest.TargetStatus
	Trigger()
}

type Server struct {
	Harvester Harvester
	Config    *config.HarvestConfig
	Router    *mux.Router
	Logger    *zap.Logger
	// Audit records refresh requests; nil disables it
	Audit *audit.Logger
	srv   *http.Server
}

func NewServer(
	harvester Harvester,
	cfg *config.HarvestConfig,
	logger *zap.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler:      handlers.LoggingHandler(zap.NewStdLog(logger.Named("http")).Writer(), router),
		Addr:         addr,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Harvester: harvester,
		Config:    cfg,
		Router:    router,
		Logger:    logger,
		srv:       srv,
	}
}

// Handler returns the root handler, including access logging
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Start serves until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.Logger.Info("Serving harvester status", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
