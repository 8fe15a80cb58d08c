// Package devserver wires the VFS, route resolver, Next config parser and
// Tailwind config loader behind an http.Handler, the way pkg/fuego/app.go
// wires a scanner and route tree behind chi. It never executes or
// transforms user source; resolution and a diagnostic HTML shell are as
// far as this package goes, per spec.md §1's "HTML generator is an
// out-of-scope peer" boundary.
package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nextdev-go/nextvfs/pkg/nextconfig"
	"github.com/nextdev-go/nextvfs/pkg/router"
	"github.com/nextdev-go/nextvfs/pkg/tailwindcfg"
	"github.com/nextdev-go/nextvfs/pkg/vfs"
)

// Config locates a Next.js-shaped project within the VFS. AppDir and
// PagesDir may both be set (App Router takes priority per
// router.HasAppRouter) or either may be empty to disable that router.
type Config struct {
	AppDir      string
	PagesDir    string
	ProjectRoot string
	Addr        string
}

// Server is the in-process dev server: resolve, read back through the
// VFS, and emit a diagnostic response. All state below the VFS itself is
// rebuilt per request — nothing is cached except the Tailwind snippet,
// per spec.md §3's lifecycle note.
type Server struct {
	fs     vfs.FS
	config Config
	router chi.Router
	logger *RequestLogger
	server *http.Server

	tailwind tailwindcfg.Result
}

// New builds a Server and memoizes the project's Tailwind config, if
// any, exactly once — spec.md's one documented exception to "nothing is
// cached".
func New(fs vfs.FS, config Config) *Server {
	s := &Server{
		fs:       fs,
		config:   config,
		router:   chi.NewRouter(),
		logger:   NewRequestLogger(DefaultRequestLoggerConfig()),
		tailwind: tailwindcfg.Load(fs, config.ProjectRoot),
	}
	s.router.Handle("/*", http.HandlerFunc(s.handle))
	return s
}

// NextConfigValue extracts a single string-valued key (e.g.
// "assetPrefix") from configSource, the text of a next.config file
// supplied by the caller; it does not locate or read the file itself.
// isTyped should be true for a .ts config.
func (s *Server) NextConfigValue(configSource, key string, isTyped bool) (string, bool) {
	return nextconfig.ParseNextConfigValue(configSource, key, isTyped)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}

	resolution := s.resolve(r.URL.Path)
	s.respond(rw, r.URL.Path, resolution)

	s.logger.Log(r, rw.status, rw.size, time.Since(start), resolution.Kind)
}

// resolutionKind is the user-facing classification of what matched the
// request path: an App Router page, a Pages Router page, an API/route
// handler, or no match.
type resolutionKind string

const (
	kindApp   resolutionKind = "app"
	kindPages resolutionKind = "pages"
	kindAPI   resolutionKind = "api"
	kindNone  resolutionKind = "none"
)

type resolution struct {
	Kind     resolutionKind
	Route    *router.Route
	PageFile string
	APIFile  string
}

func (s *Server) resolve(pathname string) resolution {
	isAPI := pathname == "/api" || strings.HasPrefix(pathname, "/api/")

	if s.config.AppDir != "" && router.HasAppRouter(s.fs, s.config.AppDir) {
		if isAPI {
			if p, ok := router.ResolveAppRouteHandler(s.fs, s.config.AppDir, pathname); ok {
				return resolution{Kind: kindAPI, APIFile: p}
			}
		}
		if rec := router.ResolveAppRoute(s.fs, s.config.AppDir, pathname); rec != nil {
			return resolution{Kind: kindApp, Route: rec}
		}
	}

	if s.config.PagesDir != "" {
		if isAPI {
			if p, ok := router.ResolveApiFile(s.fs, s.config.PagesDir, pathname); ok {
				return resolution{Kind: kindAPI, APIFile: p}
			}
		} else if p, ok := router.ResolvePageFile(s.fs, s.config.PagesDir, pathname); ok {
			return resolution{Kind: kindPages, PageFile: p}
		}
	}

	return resolution{Kind: kindNone}
}

func (s *Server) respond(w http.ResponseWriter, pathname string, res resolution) {
	switch res.Kind {
	case kindAPI:
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"resolved":       res.APIFile,
			"needsTransform": router.NeedsTransform(res.APIFile),
		})
	case kindApp:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = diagnosticShell(pathname, res.Route, "", s.tailwind.ConfigScript).Render(context.Background(), w)
	case kindPages:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = diagnosticShell(pathname, nil, res.PageFile, s.tailwind.ConfigScript).Render(context.Background(), w)
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = diagnosticShell(pathname, nil, "", "").Render(context.Background(), w)
	}
}

// Listen starts the HTTP server and blocks until it receives SIGINT or
// SIGTERM, then shuts down gracefully — the same signal-driven lifecycle
// pkg/fuego/app.go's Listen uses.
func (s *Server) Listen(addr ...string) error {
	address := s.config.Addr
	if len(addr) > 0 {
		address = addr[0]
	}
	if address == "" {
		address = ":3000"
	}

	s.server = &http.Server{
		Addr:              address,
		Handler:           s,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	serverErr := make(chan error, 1)

	go func() {
		fmt.Printf("\n  nextvfs dev server running at http://localhost%s\n\n", address)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
		fmt.Println("\n  Shutting down gracefully...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown gracefully: %w", err)
	}
	fmt.Println("  Server stopped")
	return nil
}

// Shutdown gracefully shuts down a running server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// responseWriter captures status/size the way pkg/fuego's does for its
// request logger.
type responseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *responseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
