package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/chartday/internal/shared"
	"github.com/desertthunder/chartday/internal/tasks"
	"github.com/desertthunder/chartday/internal/web"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, CORS, rate limiting, etc.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the playlist service.
// Implementations handle specific endpoints (playlist builds, health).
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// Router defines the interface for HTTP routing and middleware management.
// Implementations register handlers, apply middleware, and configure the HTTP server.
type Router interface {
	Use(middleware ...Middleware)                     // Use adds middleware to the router's middleware stack
	Handle(method, path string, handler http.Handler) // Handle registers a handler for the specified method and path
	Handler(handler Handler)                          // Handler registers a custom Handler implementation
	ServeHTTP(w http.ResponseWriter, r *http.Request) // ServeHTTP implements http.Handler for the entire router
}

// NewServer wires the router, logging middleware, the playlist API handler
// and the embedded front end into an [http.Server].
func NewServer(cfg shared.ServerConfig, engine *tasks.PlaylistEngine, logger *log.Logger) (*http.Server, error) {
	router := NewBasicRouter()
	router.Use(Logging(logger))
	router.Handler(NewPlaylistHandler(engine, logger))

	staticFS, err := web.Static()
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded assets: %w", err)
	}
	router.Handle(http.MethodGet, "/", http.FileServer(http.FS(staticFS)))

	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler: router,
	}, nil
}
