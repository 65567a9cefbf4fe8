package worker

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"geogram/config"
	"geogram/internal/delivery"
	"geogram/internal/delivery/middleware"
	"geogram/internal/delivery/worker/handler"
	"geogram/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server. The push handlers
// are optional so the notifier and matcher binaries each mount only their own
// endpoint.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	DispatchHandler   *handler.DispatchHandler   `optional:"true"`
	MatchHandler      *handler.MatchHandler      `optional:"true"`
	EventHandler      *handler.EventHandler      `optional:"true"`
	QueryHandler      *handler.QueryHandler      `optional:"true"`
	EscalationHandler *handler.EscalationHandler `optional:"true"`
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true

	// Recover first so panics never escape the handler chain
	e.Use(echomiddleware.Recover())

	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	if params.DispatchHandler != nil {
		e.POST("/push/dispatch", params.DispatchHandler.HandlePush)
	}
	if params.MatchHandler != nil {
		e.POST("/push/match", params.MatchHandler.HandlePush)
	}
	if params.EventHandler != nil {
		e.POST("/events", params.EventHandler.IngestEvent)
	}
	if params.QueryHandler != nil {
		e.POST("/match/query", params.QueryHandler.MatchEvents)
	}
	if params.EscalationHandler != nil {
		e.GET("/escalations", params.EscalationHandler.ListEscalations)
	}

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
