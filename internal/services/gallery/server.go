package gallery

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/iconselect/internal/platform/icons"
	"github.com/louisbranch/iconselect/internal/platform/icons/families"
	"github.com/louisbranch/iconselect/internal/platform/timeouts"
	"go.opentelemetry.io/otel/trace"
)

// Config defines the inputs for the gallery HTTP server.
type Config struct {
	HTTPAddr string
	// Registry overrides the built-in families when set.
	Registry       *icons.Registry
	Logger         *log.Logger
	TracerProvider trace.TracerProvider
}

// Server hosts the icon gallery.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	handler    http.Handler
}

// NewServer builds the gallery server and its route table.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}

	registry := config.Registry
	if registry == nil {
		built, err := icons.NewRegistry(families.Default())
		if err != nil {
			return nil, fmt.Errorf("build icon registry: %w", err)
		}
		registry = built
	}

	mux := http.NewServeMux()
	NewHandler(registry, config.TracerProvider).RegisterRoutes(mux)
	handler := RequestLogger(config.Logger)(mux)

	return &Server{
		httpAddr: httpAddr,
		handler:  handler,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Handler returns the server's root handler.
func (s *Server) Handler() http.Handler {
	if s == nil {
		return http.NotFoundHandler()
	}
	return s.handler
}

// ListenAndServe runs the HTTP server until the context ends, then drains
// in-flight requests within timeouts.Shutdown.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("gallery server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("icon gallery listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}
