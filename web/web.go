// Package web embeds the single-page frontend served by the API binary.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var assets embed.FS

// Handler serves the embedded frontend files.
func Handler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// The static directory is embedded at compile time.
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
