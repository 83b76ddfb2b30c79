// Package web serves the brush chart as a page kept current with datastar
// server-sent element patches. The brush state machine runs on the server;
// the page only reports pointer positions and its container size.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/san-kum/brushchart/internal/app"
	"github.com/san-kum/brushchart/internal/viz"
)

//go:embed templates/*.gohtml static/*
var content embed.FS

const shutdownTimeout = 5 * time.Second

// Server holds the one shared session. Every request runs under mu, which
// serializes redraws the way a UI runtime's update queue would.
type Server struct {
	mu        sync.Mutex
	app       *app.App
	theme     viz.Theme
	templates *template.Template
	handler   *http.ServeMux
}

func NewServer(a *app.App, theme viz.Theme) (*Server, error) {
	templates, err := template.New("").ParseFS(content, "templates/*.gohtml")
	if err != nil {
		return nil, err
	}

	s := &Server{
		app:       a,
		theme:     theme,
		templates: templates,
	}

	handler := http.NewServeMux()
	handler.HandleFunc("GET /{$}", s.IndexHandler)
	handler.HandleFunc("POST /add-sample", s.AddSampleHandler)
	handler.HandleFunc("POST /brush", s.BrushHandler)
	handler.HandleFunc("POST /resize", s.ResizeHandler)
	handler.HandleFunc("POST /reset", s.ResetHandler)
	handler.HandleFunc("GET /updates", s.UpdatesHandler)
	handler.Handle("GET /static/", http.FileServer(http.FS(content)))
	s.handler = handler

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.handler,
		// update streams end with ctx instead of holding up Shutdown
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s …", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
