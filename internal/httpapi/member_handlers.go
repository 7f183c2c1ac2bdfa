package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"loop/internal/membership"
)

type memberResponse struct {
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	AvatarPath *string   `json:"avatar_path,omitempty"`
	Role       string    `json:"role"`
	JoinedAt   time.Time `json:"joined_at"`
}

func toMemberResponse(m membership.MemberWithProfile) memberResponse {
	return memberResponse{
		UserID:     m.User.ID,
		Name:       m.User.Name,
		AvatarPath: m.User.AvatarPath,
		Role:       m.Membership.Role,
		JoinedAt:   m.Membership.JoinedAt,
	}
}

func (s *Server) joinGroup(w http.ResponseWriter, r *http.Request) {
	m, err := s.roster.Join(r.Context(), pathID(r, "id"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"group_id":  m.GroupID,
		"user_id":   m.UserID,
		"role":      m.Role,
		"joined_at": m.JoinedAt,
	})
}

func (s *Server) leaveGroup(w http.ResponseWriter, r *http.Request) {
	if err := s.roster.Leave(r.Context(), pathID(r, "id"), callerID(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.roster.ListMembersWithProfiles(r.Context(), pathID(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]memberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, toMemberResponse(m))
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"members": out})
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (s *Server) changeRole(w http.ResponseWriter, r *http.Request) {
	var req changeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return
	}

	err := s.roster.ChangeRole(r.Context(), pathID(r, "id"), callerID(r), pathID(r, "userID"), req.Role)
	if err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
