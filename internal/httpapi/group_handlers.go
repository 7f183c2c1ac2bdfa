package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"loop/internal/dbmysql"
)

type groupResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	JoinCode   *string   `json:"join_code,omitempty"`
	CreatorID  int64     `json:"creator_id"`
	MaxMembers int       `json:"max_members"`
	AvatarPath *string   `json:"avatar_path,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

func toGroupResponse(g *dbmysql.Group) groupResponse {
	return groupResponse{
		ID:         g.ID,
		Name:       g.Name,
		JoinCode:   g.JoinCode,
		CreatorID:  g.CreatorID,
		MaxMembers: g.MaxMembers,
		AvatarPath: g.AvatarPath,
		Active:     g.Active,
		CreatedAt:  g.CreatedAt,
	}
}

func pathID(r *http.Request, name string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	return id
}

type createGroupRequest struct {
	Name       string  `json:"name"`
	MaxMembers int     `json:"max_members"`
	AvatarPath *string `json:"avatar_path"`
}

func (s *Server) createGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	g, err := s.groups.CreateGroup(r.Context(), callerID(r), req.Name, req.MaxMembers, req.AvatarPath)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toGroupResponse(g))
}

func (s *Server) getGroup(w http.ResponseWriter, r *http.Request) {
	g, err := s.groups.GetGroup(r.Context(), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

func (s *Server) findGroupByCode(w http.ResponseWriter, r *http.Request) {
	g, err := s.groups.FindGroupByCode(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

type updateGroupRequest struct {
	Name       *string `json:"name"`
	AvatarPath *string `json:"avatar_path"`
}

func (s *Server) updateGroup(w http.ResponseWriter, r *http.Request) {
	var req updateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	groupID := pathID(r, "id")
	actorID := callerID(r)

	if req.Name != nil {
		if err := s.groups.RenameGroup(r.Context(), groupID, actorID, *req.Name); err != nil {
			writeError(w, err)
			return
		}
	}
	if req.AvatarPath != nil {
		if err := s.groups.UpdateAvatar(r.Context(), groupID, actorID, *req.AvatarPath); err != nil {
			writeError(w, err)
			return
		}
	}

	g, err := s.groups.GetGroup(r.Context(), groupID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toGroupResponse(g))
}

func (s *Server) deactivateGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.groups.DeactivateGroup(r.Context(), pathID(r, "id"), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) purgeGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.groups.PurgeGroup(r.Context(), pathID(r, "id"), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
