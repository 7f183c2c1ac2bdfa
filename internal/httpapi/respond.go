package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"loop/internal/common"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps the service error taxonomy onto HTTP statuses. Upstream
// and partial failures surface an opaque diagnostic code, never the wrapped
// store error.
func writeError(w http.ResponseWriter, err error) {
	var partialCreate *common.PartialCreateError
	var partialUpload *common.PartialUploadError
	var upstream *common.UpstreamError

	switch {
	case errors.Is(err, common.ErrGroupNotFound),
		errors.Is(err, common.ErrMediaNotFound),
		errors.Is(err, common.ErrMemberNotFound),
		errors.Is(err, common.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrAlreadyMember),
		errors.Is(err, common.ErrGroupFull),
		errors.Is(err, common.ErrGroupStillActive):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrUnauthorized),
		errors.Is(err, common.ErrLastAdmin):
		writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, common.ErrCodeSpaceExhausted):
		log.Printf("join code space exhausted: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "no join codes available", Code: "code_space_exhausted"})
	case errors.As(err, &partialCreate):
		log.Printf("partial group create: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "group creation incomplete", Code: "partial_create"})
	case errors.As(err, &partialUpload):
		log.Printf("partial media upload: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "upload incomplete", Code: "partial_upload"})
	case errors.As(err, &upstream):
		log.Printf("upstream failure: %v", err)
		writeJSON(w, http.StatusBadGateway, errorBody{Error: "upstream failure", Code: "upstream"})
	default:
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	}
}
