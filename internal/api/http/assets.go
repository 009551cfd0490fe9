// internal/api/http/assets.go
package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vocamind/vocamind-skill/internal/storage"
)

// MountAudio serves cached definition audio from the blob store. FSStore
// public URLs point here.
func MountAudio(r chi.Router, bs storage.BlobStore) {
	// GET /audio/*  -> the blob at whatever follows /audio/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		key = strings.TrimPrefix(key, "/")
		if key == "" || strings.Contains(key, "..") {
			http.Error(w, "bad key", http.StatusBadRequest)
			return
		}
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = io.Copy(w, rc)
	})
}
