package app

import (
	"context"
	"errors"
	"golang.org/x/sync/errgroup"
	"net/http"
	"time"
)

// Task is a component that runs until its context is cancelled.
type Task interface {
	Run(ctx context.Context) error
}

type Tasks []Task

// Run runs all tasks until the context is cancelled or one of them fails. A failing task stops all other tasks.
func (t Tasks) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range t {
		g.Go(func() error { return task.Run(ctx) })
	}
	return g.Wait()
}

type httpServer struct {
	server *http.Server
}

func newHTTPServer(addr string, handler http.Handler) *httpServer {
	return &httpServer{server: &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}}
}

func (s *httpServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
