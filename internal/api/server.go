package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/farrand/iotcore/internal/auth"
	"github.com/farrand/iotcore/internal/device"
	"github.com/farrand/iotcore/internal/infrastructure/config"
	"github.com/farrand/iotcore/internal/infrastructure/logging"
	"github.com/farrand/iotcore/internal/telemetry"
)

// gracefulShutdownTimeout is the maximum time to wait for in-flight requests
// to complete during shutdown.
const gracefulShutdownTimeout = 10 * time.Second

// Deps holds the dependencies required by the API server.
type Deps struct {
	Config        *config.Config
	Logger        *logging.Logger
	UserRepo      auth.UserRepository
	DeviceRepo    device.Repository
	TelemetryRepo telemetry.Repository
	Version       string
}

// Server is the HTTP API server.
//
// It manages the HTTP listener, routes, and middleware. The server is
// created with New() and started with Start().
type Server struct {
	cfg           *config.Config
	logger        *logging.Logger
	userRepo      auth.UserRepository
	deviceRepo    device.Repository
	telemetryRepo telemetry.Repository
	version       string
	server        *http.Server
}

// New creates a new API server with the given dependencies.
//
// The server is not started until Start() is called.
func New(deps Deps) (*Server, error) {
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if deps.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if deps.DeviceRepo == nil {
		return nil, fmt.Errorf("device repository is required")
	}
	if deps.TelemetryRepo == nil {
		return nil, fmt.Errorf("telemetry repository is required")
	}

	return &Server{
		cfg:           deps.Config,
		logger:        deps.Logger,
		userRepo:      deps.UserRepo,
		deviceRepo:    deps.DeviceRepo,
		telemetryRepo: deps.TelemetryRepo,
		version:       deps.Version,
	}, nil
}

// Start begins listening for HTTP connections.
//
// It builds the router and launches the HTTP listener in a background
// goroutine. The server can be stopped with Close().
func (s *Server) Start(_ context.Context) error {
	router := s.buildRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.cfg.API.Host, s.cfg.API.Port),
		Handler:           router,
		ReadTimeout:       s.cfg.ReadTimeout(),
		ReadHeaderTimeout: s.cfg.ReadTimeout(),
		WriteTimeout:      s.cfg.WriteTimeout(),
		IdleTimeout:       s.cfg.IdleTimeout(),
	}

	go func() {
		err := s.server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("API server error", "error", err)
		}
	}()

	s.logger.Info("API server listening", "address", s.server.Addr)
	return nil
}

// Close gracefully shuts down the API server.
//
// It waits up to 10 seconds for in-flight requests to complete,
// then forcefully closes remaining connections.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), gracefulShutdownTimeout)
	defer cancel()

	s.logger.Info("API server shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}

// HealthCheck verifies the API server is running and responsive.
func (s *Server) HealthCheck(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("api health check: %w", ctx.Err())
	default:
	}

	if s.server == nil {
		return fmt.Errorf("api server not started")
	}

	return nil
}
