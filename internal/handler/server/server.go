package server

import (
	"context"
	"net/http"

	"github.com/bagdasarian/taskhub/internal/handler"
	"github.com/sirupsen/logrus"
)

type Server struct {
	handler *handler.Handler
	logger  *logrus.Logger
	server  *http.Server
}

func NewServer(h *handler.Handler, logger *logrus.Logger, addr string) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:    addr,
			Handler: mux,
		},
	}
}

func (s *Server) Start() error {
	s.logger.Infof("Server starting on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("Server stopped")
	return nil
}
