package server

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sanonone/lexikit/internal/config"
	lexmcp "github.com/sanonone/lexikit/internal/mcp"
	"github.com/sanonone/lexikit/internal/server/ui"
	"github.com/sanonone/lexikit/internal/session"
	"github.com/sanonone/lexikit/pkg/comparison"
	"github.com/sanonone/lexikit/pkg/textanalyzer"
)

// Server holds the HTTP interface and the NLP components it exposes.
type Server struct {
	cfg      config.Config
	pipeline *textanalyzer.Pipeline
	engine   *comparison.Engine
	sessions session.Store
	pages    *template.Template
	logger   *slog.Logger

	mcpServer  *sdkmcp.Server
	httpServer *http.Server
}

// NewServer wires the routes and middleware. Nothing listens until Run.
func NewServer(cfg config.Config, pipeline *textanalyzer.Pipeline, engine *comparison.Engine, sessions session.Store, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	pages, err := ui.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}

	s := &Server{
		cfg:      cfg,
		pipeline: pipeline,
		engine:   engine,
		sessions: sessions,
		pages:    pages,
		logger:   logger.With("component", "http"),
	}

	mux := http.NewServeMux()
	s.registerHTTPHandlers(mux)

	if cfg.MCP.Enabled {
		s.mcpServer = lexmcp.NewMCPServer(pipeline, engine, logger)
		mux.Handle("/mcp", sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
			return s.mcpServer
		}, nil))
	}

	// Chain middlewares: Recovery -> Logging -> Mux
	// Recovery must be outer-most to catch everything.
	var handler http.Handler = mux
	handler = s.LoggingMiddleware(handler)
	handler = s.RecoveryMiddleware(handler)

	rootMux := http.NewServeMux()
	rootMux.HandleFunc("GET /healthz", s.handleHealthz)
	if cfg.Metrics.Enabled {
		rootMux.Handle("GET /metrics", promhttp.Handler())
	}
	rootMux.Handle("/", handler)

	s.httpServer = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      rootMux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s, nil
}

// Handler returns the root handler, for embedding and tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// MCPServer returns the MCP server, or nil when MCP is disabled.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}

// Run starts the HTTP server and blocks until it stops.
func (s *Server) Run() error {
	s.logger.Info("HTTP server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server startup failed: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server within the configured timeout.
// It does NOT close the session store (main.go owns it).
func (s *Server) Shutdown() {
	s.logger.Info("Starting graceful shutdown of HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}
}
