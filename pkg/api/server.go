// Package api exposes the explanation service over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/utkarshrajputt/concept-ai/pkg/config"
	"github.com/utkarshrajputt/concept-ai/pkg/models"
	"github.com/utkarshrajputt/concept-ai/pkg/provider"
	"github.com/utkarshrajputt/concept-ai/pkg/service"
	"github.com/utkarshrajputt/concept-ai/pkg/store/sqlite"
)

// Server is the concept-ai HTTP API.
type Server struct {
	cfg    *config.Config
	svc    *service.Service
	store  *sqlite.Store
	log    zerolog.Logger
	engine *gin.Engine
}

// New wires the API routes onto a gin engine.
func New(cfg *config.Config, svc *service.Service, store *sqlite.Store, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:    cfg,
		svc:    svc,
		store:  store,
		log:    log,
		engine: gin.New(),
	}

	s.engine.Use(gin.Recovery())
	s.engine.Use(RequestID())
	s.engine.Use(RequestLogger(log))
	s.engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	s.engine.POST("/explain", s.handleExplain)
	s.engine.DELETE("/explain", s.handleDelete)
	s.engine.GET("/analytics", s.handleAnalytics)
	s.engine.GET("/suggestions", s.handleSuggestions)
	s.engine.GET("/cache/stats", s.handleCacheStats)
	s.engine.GET("/health", s.handleHealth)

	return s
}

// Handler exposes the engine for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Listen).Msg("api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleExplain(c *gin.Context) {
	var req models.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, err := s.svc.Explain(c.Request.Context(), req)
	if err != nil {
		s.writeExplainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeExplainError maps the service error taxonomy onto HTTP statuses:
// request rejections 400, AI-detected-invalid 422, missing credentials 503,
// provider transport/format failures 502.
func (s *Server) writeExplainError(c *gin.Context, err error) {
	var reqErr *service.RequestError
	if errors.As(err, &reqErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": reqErr.Reason})
		return
	}

	var rejErr *service.RejectedError
	if errors.As(err, &rejErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": rejErr.Error()})
		return
	}

	var provErr *provider.Error
	if errors.As(err, &provErr) {
		status := http.StatusBadGateway
		if provErr.Kind == provider.KindConfig {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": provErr.Message})
		return
	}

	s.log.Error().Err(err).Msg("explain failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

type deleteRequest struct {
	Topic string `json:"topic"`
	Level string `json:"level"`
}

func (s *Server) handleDelete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	result, err := s.svc.Delete(c.Request.Context(), req.Topic, req.Level)
	if err != nil {
		var reqErr *service.RequestError
		if errors.As(err, &reqErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": reqErr.Reason})
			return
		}
		s.log.Error().Err(err).Msg("cache delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cache entry"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleAnalytics(c *gin.Context) {
	analytics, err := s.store.Analytics(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("analytics query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (s *Server) handleSuggestions(c *gin.Context) {
	topics, err := s.store.Suggestions(c.Request.Context(), 10)
	if err != nil {
		s.log.Error().Err(err).Msg("suggestions query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load suggestions"})
		return
	}
	if topics == nil {
		topics = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": topics, "count": len(topics)})
}

func (s *Server) handleCacheStats(c *gin.Context) {
	stats, err := s.store.Stats(c.Request.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("cache stats query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cache stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
