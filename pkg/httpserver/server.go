package httpserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"
)

type Server struct {
	mu         sync.Mutex
	httpServer *http.Server
}

func (s *Server) Run(host, port string, handler http.Handler) error {
	s.mu.Lock()
	s.httpServer = &http.Server{
		Addr:           net.JoinHostPort(host, port),
		Handler:        handler,
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
	}
	srv := s.httpServer
	s.mu.Unlock()

	return srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()

	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
