// Package web embeds the HTML templates so the binary is self-contained.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed templates
var templates embed.FS

// Templates returns the template tree rooted at templates/.
func Templates() http.FileSystem {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
