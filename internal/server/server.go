// Package server provides a local preview server for a patched site.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds preview server configuration.
type Config struct {
	Port       int
	SiteDir    string // directory containing the patched site
	AllowAll   bool   // allow all CORS origins (dev mode)
	LiveReload bool   // reload connected browsers when the site changes
	Open       bool   // open the browser on startup
}

// Server serves the patched site with optional live reload.
type Server struct {
	cfg        Config
	router     chi.Router
	httpServer *http.Server
	reload     *reloadHub
}

// New creates a preview server for the given configuration.
func New(cfg Config) *Server {
	s := &Server{cfg: cfg}
	if cfg.LiveReload {
		s.reload = newReloadHub()
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if s.reload != nil {
		r.Get("/livereload", s.reload.handle)
	}

	// Static site, with the reload client injected into HTML pages.
	r.NotFound(s.servePage)

	return r
}

// servePage serves files from the site directory. HTML responses get
// the live reload client appended when reload is enabled.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	path := filepath.Join(s.cfg.SiteDir, filepath.FromSlash(rel))

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "index.html")
	}

	if s.reload != nil && strings.HasSuffix(path, ".html") {
		content, err := os.ReadFile(path)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(content)
		w.Write([]byte(reloadClient))
		return
	}

	http.ServeFile(w, r, path)
}

// Start begins listening on the configured port and blocks.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	url := fmt.Sprintf("http://localhost:%d", s.cfg.Port)

	if s.reload != nil {
		go s.reload.watch(ctx, s.cfg.SiteDir, 500*time.Millisecond)
	}
	if s.cfg.Open {
		go openBrowser(url)
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	slog.Info("preview server listening", "url", url, "site", s.cfg.SiteDir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

// Router returns the chi router, for tests.
func (s *Server) Router() chi.Router { return s.router }

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
