package portal

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rhyrak/go-timetable/internal/pipeline"
)

//go:embed templates/*.html
var templatesFS embed.FS

// SnapshotSource provides the current roster and master timetable.
type SnapshotSource interface {
	Snapshot() (*pipeline.Snapshot, error)
}

type Options struct {
	// Placeholder fills grid cells without a class.
	Placeholder string
	// Gatherer backs /metrics. Nil uses the default gatherer.
	Gatherer prometheus.Gatherer
}

// Server holds the state for the portal HTTP server.
type Server struct {
	src         SnapshotSource
	metrics     *Metrics
	placeholder string
	router      *gin.Engine
	log         zerolog.Logger
	http        *http.Server
}

// NewServer builds the router. A nil metrics registers collectors on the
// default registerer.
func NewServer(src SnapshotSource, metrics *Metrics, opts Options, log zerolog.Logger) (*Server, error) {
	if metrics == nil {
		m, err := NewMetrics(nil)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
		metrics = m
	}
	if opts.Placeholder == "" {
		opts.Placeholder = "---"
	}
	if opts.Gatherer == nil {
		opts.Gatherer = prometheus.DefaultGatherer
	}

	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(log))
	router.SetHTMLTemplate(tmpl)

	s := &Server{
		src:         src,
		metrics:     metrics,
		placeholder: opts.Placeholder,
		router:      router,
		log:         log,
	}

	router.GET("/", s.handleIndex)
	router.POST("/", s.handleLogin)
	router.GET("/timetable.csv", s.handleGetTimetable)
	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.log.Info().Msg("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	s.log.Info().Msg("HTTP server gracefully stopped")
	return nil
}
