// Package api provides the REST API for HydraSIG.
// It exposes the SIG codec, the SIG record store and the loaded zones
// over a Gin-based HTTP server, together with health, stats and metrics.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/handlers"
	"github.com/jroosing/hydrasig/internal/api/middleware"
	"github.com/jroosing/hydrasig/internal/config"
	"github.com/jroosing/hydrasig/internal/database"
)

// Server is the REST API server.
//
// Security note: do not expose the API to untrusted networks without an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	handler    *handlers.Handler
	httpServer *http.Server
}

// New builds the server. db may be nil; the record endpoints then answer 503.
func New(cfg *config.Config, db *database.DB, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.PrometheusMetrics())
	engine.Use(middleware.SlogRequestLogger(logger))

	h := handlers.New(cfg, db, logger)
	RegisterRoutes(engine, h, cfg)

	addr := net.JoinHostPort(cfg.API.Host, strconv.Itoa(cfg.API.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, handler: h, httpServer: httpServer}
}

func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the endpoint handlers, e.g. to publish loaded zones.
func (s *Server) Handler() *handlers.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
