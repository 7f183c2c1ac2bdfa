package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"loop/internal/common"
	"loop/internal/dbmongo"
)

// BlobSource is the read side of the object store.
type BlobSource interface {
	Get(ctx context.Context, path string) (io.Reader, *dbmongo.StoredBlob, error)
}

// BlobServer streams stored blobs over HTTP. It is the read side of
// PublicURL: MEDIA_BASE_URL points here.
type BlobServer struct {
	store BlobSource
}

func NewBlobServer(store BlobSource) *BlobServer {
	return &BlobServer{store: store}
}

func (s *BlobServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	router := mux.NewRouter()

	// Storage paths contain slashes (groups/<id>/<uuid>.<ext>)
	router.HandleFunc("/media/{path:.+}", s.serveBlob).Methods("GET")

	// Health check
	router.HandleFunc("/health", s.health).Methods("GET")

	router.ServeHTTP(w, r)
}

func (s *BlobServer) serveBlob(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	path := vars["path"]

	reader, blob, err := s.store.Get(r.Context(), path)
	if err != nil {
		http.Error(w, "Blob not found", http.StatusNotFound)
		return
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = common.ContentTypeForExtension(filepath.Ext(path))
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", blob.Size))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("Error streaming blob %s: %v", path, err)
	}
}

func (s *BlobServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
