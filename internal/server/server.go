// Package server is an HTTP shell over the menu, cart and ledger.
//
// Each POST /carts opens a cart session keyed by a UUIDv7. Sessions live in
// memory only; committed orders live in the ledger.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/roach88/foodorders/internal/ledger"
	"github.com/roach88/foodorders/internal/menu"
)

// Options configures a Server.
type Options struct {
	Catalog *menu.Catalog
	Ledger  *ledger.Ledger

	// Metrics is mounted at /metrics when non-nil.
	Metrics http.Handler

	// IDs defaults to UUIDv7Generator.
	IDs IDGenerator

	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Server serves the JSON API.
type Server struct {
	catalog  *menu.Catalog
	ledger   *ledger.Ledger
	metrics  http.Handler
	ids      IDGenerator
	logger   *slog.Logger
	sessions *sessions
}

// New creates a Server. Catalog and Ledger are required.
func New(opts Options) (*Server, error) {
	if opts.Catalog == nil {
		return nil, errors.New("server: catalog is required")
	}
	if opts.Ledger == nil {
		return nil, errors.New("server: ledger is required")
	}
	s := &Server{
		catalog:  opts.Catalog,
		ledger:   opts.Ledger,
		metrics:  opts.Metrics,
		ids:      opts.IDs,
		logger:   opts.Logger,
		sessions: newSessions(),
	}
	if s.ids == nil {
		s.ids = UUIDv7Generator{}
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s, nil
}

// Router builds the gin engine with all routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	r.GET("/healthz", s.handleHealth)
	r.GET("/menu", s.handleMenu)

	carts := r.Group("/carts")
	carts.POST("", s.handleCreateCart)
	carts.GET("/:id", s.handleGetCart)
	carts.DELETE("/:id", s.handleDeleteCart)
	carts.POST("/:id/items", s.handleAddItem)
	carts.DELETE("/:id/items", s.handleClearCart)
	carts.GET("/:id/invoice", s.handleInvoice)
	carts.POST("/:id/commit", s.handleCommit)

	r.GET("/orders", s.handleListOrders)
	r.GET("/orders/:id", s.handleGetOrder)
	r.GET("/revenue", s.handleRevenue)
	r.GET("/customers", s.handleCustomers)

	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics))
	}
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
