package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/sureshullagaddi/movie-rental-app/internal/config"
	invoicedomain "github.com/sureshullagaddi/movie-rental-app/internal/invoice/domain"
	"github.com/sureshullagaddi/movie-rental-app/internal/invoice/render"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability/logger"
	"github.com/sureshullagaddi/movie-rental-app/internal/observability/metrics"
)

// Server wires the HTTP surface over the invoice service.
type Server struct {
	cfg        config.Config
	log        *zap.Logger
	engine     *gin.Engine
	invoiceSvc invoicedomain.Service
	renderer   render.Renderer
}

type ServerParam struct {
	fx.In

	Cfg        config.Config
	Log        *zap.Logger
	Engine     *gin.Engine
	InvoiceSvc invoicedomain.Service
	Renderer   render.Renderer
}

// NewEngine builds the gin engine with the shared middleware stack.
func NewEngine(cfg config.Config, log *zap.Logger, httpMetrics *metrics.HTTPMetrics) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(metrics.GinMiddleware(httpMetrics))
	return engine
}

// NewServer constructs the Server.
func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		engine:     p.Engine,
		invoiceSvc: p.InvoiceSvc,
		renderer:   p.Renderer,
	}
}

// RegisterAPIRoutes mounts the rental invoice endpoints.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")
	rentals := api.Group("/rentals")
	rentals.POST("/invoice", s.GenerateInvoice)
	rentals.POST("/invoice/id", s.GenerateInvoiceByID)
	rentals.POST("/invoice/structured", s.GenerateStructuredInvoice)
	rentals.POST("/invoice/pdf", s.GenerateInvoicePDF)
	rentals.POST("/parse", s.ParseInvoice)

	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RunHTTP starts the HTTP listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, s *Server) {
	srv := &http.Server{
		Addr:    s.cfg.HTTPAddr(),
		Handler: s.engine,
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.log.Info("starting http server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) {
		s.RegisterAPIRoutes()
	}),
	fx.Invoke(RunHTTP),
)
