package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"loop/internal/dbmysql"
)

type profileResponse struct {
	ID         int64     `json:"id"`
	Phone      string    `json:"phone"`
	Name       string    `json:"name"`
	AvatarPath *string   `json:"avatar_path,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func toProfileResponse(u *dbmysql.User) profileResponse {
	return profileResponse{
		ID:         u.ID,
		Phone:      u.Phone,
		Name:       u.Name,
		AvatarPath: u.AvatarPath,
		CreatedAt:  u.CreatedAt,
	}
}

func (s *Server) getMe(w http.ResponseWriter, r *http.Request) {
	u, err := s.users.GetProfile(r.Context(), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}

type syncProfileRequest struct {
	Name string `json:"name"`
}

// syncMe mirrors the caller's identity-provider profile into the local table.
// The phone comes from the verified session token, never from the body.
func (s *Server) syncMe(w http.ResponseWriter, r *http.Request) {
	var req syncProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	claims := callerClaims(r)
	u, err := s.users.SyncProfile(r.Context(), claims.UserID, claims.Phone, req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfileResponse(u))
}

type updateProfileRequest struct {
	Name       *string `json:"name"`
	AvatarPath *string `json:"avatar_path"`
}

func (s *Server) updateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	u, err := s.users.UpdateProfile(r.Context(), callerID(r), req.Name, req.AvatarPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileResponse(u))
}
