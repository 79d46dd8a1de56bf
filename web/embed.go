// Package web holds the admin page templates and static assets compiled
// into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static/*.js
var staticFiles embed.FS

// Templates returns the template directory with the templates/ prefix
// stripped.
func Templates() fs.FS {
	return mustSub(templateFiles, "templates")
}

// Static returns the assets served under /static.
func Static() fs.FS {
	return mustSub(staticFiles, "static")
}

func mustSub(files fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
