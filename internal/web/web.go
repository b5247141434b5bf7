// Package web embeds the static front end served alongside the playlist API.
//
// The site is a single page: a form posting to GET /api/playlist and a
// renderer for the returned songs. It has no build step; the files under
// static/ are served as-is.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var assets embed.FS

// Static returns the embedded site rooted at the static directory, suitable
// for http.FileServer.
func Static() (fs.FS, error) {
	return fs.Sub(assets, "static")
}
