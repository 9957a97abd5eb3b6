package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/cnab-ledger/internal/config"
	"github.com/grachmannico95/cnab-ledger/internal/handler"
	"github.com/grachmannico95/cnab-ledger/internal/middleware"
	"github.com/grachmannico95/cnab-ledger/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	cnabHandler   *handler.CNABHandler
	storeHandler  *handler.StoreHandler
	healthHandler *handler.HealthHandler
}

func New(
	cfg *config.Config,
	log *logger.Logger,
	cnabHandler *handler.CNABHandler,
	storeHandler *handler.StoreHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		cnabHandler:   cnabHandler,
		storeHandler:  storeHandler,
		healthHandler: healthHandler,
	}
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)

	api := s.echo.Group("/api/v1")

	var ingest []echo.MiddlewareFunc
	if s.cfg.Throttle.Enabled {
		ingest = append(ingest, middleware.NewThrottle(s.cfg.Throttle, s.logger).Middleware())
	}

	api.POST("/cnab-files", s.cnabHandler.UploadFile, ingest...)
	api.POST("/cnab-text", s.cnabHandler.UploadText, ingest...)
	api.GET("/uploads/:id", s.cnabHandler.GetUpload)
	api.GET("/stores", s.storeHandler.List)
}

func (s *Server) Handler() *echo.Echo {
	return s.echo
}
