package rest

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FrontendHandler serves a built single-page app. Paths that do not name an existing file
// fall back to the index page so client-side routes survive a reload.
type FrontendHandler struct {
	dir        string
	index      string
	fileServer http.Handler
}

func NewFrontendHandler(dir string, index string) *FrontendHandler {
	return &FrontendHandler{dir: dir, index: index, fileServer: http.FileServer(http.Dir(dir))}
}

func (h *FrontendHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		http.NotFound(w, r)
		return
	}
	clean := path.Clean("/" + r.URL.Path)
	info, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(clean)))
	if err != nil || info.IsDir() {
		http.ServeFile(w, r, filepath.Join(h.dir, h.index))
		return
	}
	h.fileServer.ServeHTTP(w, r)
}
