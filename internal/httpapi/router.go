package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"loop/internal/group"
	"loop/internal/media"
	"loop/internal/membership"
	"loop/internal/user"
)

// Server binds the core services to the HTTP API.
type Server struct {
	groups group.Service
	roster membership.Service
	media  media.Service
	users  user.Service
}

func NewServer(groups group.Service, roster membership.Service, media media.Service, users user.Service) *Server {
	return &Server{groups: groups, roster: roster, media: media, users: users}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", s.health).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authMiddleware)

	api.HandleFunc("/me", s.getMe).Methods("GET")
	api.HandleFunc("/me", s.syncMe).Methods("POST")
	api.HandleFunc("/me", s.updateMe).Methods("PATCH")

	api.HandleFunc("/groups", s.createGroup).Methods("POST")
	api.HandleFunc("/groups/by-code/{code}", s.findGroupByCode).Methods("GET")
	api.HandleFunc("/groups/{id:[0-9]+}", s.getGroup).Methods("GET")
	api.HandleFunc("/groups/{id:[0-9]+}", s.updateGroup).Methods("PATCH")
	api.HandleFunc("/groups/{id:[0-9]+}", s.deactivateGroup).Methods("DELETE")
	api.HandleFunc("/groups/{id:[0-9]+}/purge", s.purgeGroup).Methods("DELETE")

	api.HandleFunc("/groups/{id:[0-9]+}/members", s.joinGroup).Methods("POST")
	api.HandleFunc("/groups/{id:[0-9]+}/members", s.listMembers).Methods("GET")
	api.HandleFunc("/groups/{id:[0-9]+}/members", s.leaveGroup).Methods("DELETE")
	api.HandleFunc("/groups/{id:[0-9]+}/members/{userID:[0-9]+}/role", s.changeRole).Methods("PUT")

	api.HandleFunc("/groups/{id:[0-9]+}/media", s.uploadMedia).Methods("POST")
	api.HandleFunc("/groups/{id:[0-9]+}/media", s.listMedia).Methods("GET")
	api.HandleFunc("/media/{id:[0-9]+}/like", s.toggleLike).Methods("POST")
	api.HandleFunc("/media/{id:[0-9]+}/likes", s.likeCount).Methods("GET")

	return router
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
