// Package server provides HTTP routing, middleware, and the playlist API for the web interface.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally with method filtering.
//
// # Playlist API
//
// [PlaylistHandler] serves GET /api/playlist. It validates the birth and count
// query parameters, runs a full build through [tasks.PlaylistEngine], and
// responds with the playlist JSON. Bad input yields 400 with an error body;
// a chart transport failure mid-build yields 502.
//
// # Front End
//
// [NewServer] mounts the embedded static site from internal/web at the root
// path, so a browser pointed at the server gets a form that drives the API.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
