// Package web serves the task manager UI.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"tasksync/internal/logging"
	"tasksync/internal/tasksync"
)

//go:embed templates/*.html static/*
var assets embed.FS

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	// Messages builds the notices shown after each action.
	Messages tasksync.Messages

	// Logger receives access logs. Nil discards them.
	Logger *slog.Logger
}

// Server is the task manager web server.
type Server struct {
	ctrl   *tasksync.Controller
	msgs   tasksync.Messages
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates a web server driving ctrl.
func NewServer(ctrl *tasksync.Controller, opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	router := gin.New()
	// Ids are path-escaped in links; match on the raw path so "a%2Fb"
	// stays one segment.
	router.UseRawPath = true
	router.Use(requestID(), accessLog(logger), gin.Recovery())

	s := &Server{
		ctrl:   ctrl,
		msgs:   opts.Messages,
		logger: logger,
		router: router,
	}

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"pathEscape": url.PathEscape,
	}).ParseFS(assets, "templates/*.html"))
	router.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	router.StaticFS("/static", http.FS(static))

	router.GET("/", s.handleIndex)
	router.POST("/tasks", s.handleCreate)
	router.POST("/tasks/:id/update", s.handleUpdate)
	router.POST("/tasks/:id/delete", s.handleDelete)
	router.GET("/healthz", s.handleHealth)

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("web server listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("web server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
