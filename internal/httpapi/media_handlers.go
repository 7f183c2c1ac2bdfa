package httpapi

import (
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"loop/internal/common"
	"loop/internal/dbmysql"
	"loop/internal/media"
)

type mediaResponse struct {
	ID           int64     `json:"id"`
	GroupID      int64     `json:"group_id"`
	UploaderID   int64     `json:"uploader_id"`
	URL          string    `json:"url"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	Kind         string    `json:"kind"`
	Caption      *string   `json:"caption,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (s *Server) toMediaResponse(m *dbmysql.Media) mediaResponse {
	resp := mediaResponse{
		ID:         m.ID,
		GroupID:    m.GroupID,
		UploaderID: m.UploaderID,
		URL:        s.media.PublicURL(m.StoragePath),
		Kind:       m.Kind,
		Caption:    m.Caption,
		CreatedAt:  m.CreatedAt,
	}
	if m.ThumbnailPath != nil {
		resp.ThumbnailURL = s.media.PublicURL(*m.ThumbnailPath)
	}
	return resp
}

// uploadMedia accepts a multipart form: "file" (required), "kind" (required),
// "caption" and "thumbnail" (optional).
func (s *Server) uploadMedia(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid multipart form"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing file"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "unreadable file"})
		return
	}

	req := media.UploadRequest{
		GroupID:       pathID(r, "id"),
		UploaderID:    callerID(r),
		Data:          data,
		FileExtension: filepath.Ext(header.Filename),
		Kind:          common.MediaKind(r.FormValue("kind")),
		Caption:       r.FormValue("caption"),
	}

	if thumbFile, _, err := r.FormFile("thumbnail"); err == nil {
		defer thumbFile.Close()
		if thumb, err := io.ReadAll(thumbFile); err == nil {
			req.Thumbnail = thumb
		}
	}

	m, err := s.media.Upload(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, s.toMediaResponse(m))
}

func (s *Server) listMedia(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	items, err := s.media.List(r.Context(), pathID(r, "id"), callerID(r), limit)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]mediaResponse, 0, len(items))
	for i := range items {
		out = append(out, s.toMediaResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"media": out})
}

func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request) {
	liked, err := s.media.ToggleLike(r.Context(), pathID(r, "id"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"liked": liked})
}

func (s *Server) likeCount(w http.ResponseWriter, r *http.Request) {
	count, err := s.media.LikeCount(r.Context(), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"likes": count})
}
