package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/server/models"
)

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.users.List(r.Context())
	if err != nil {
		s.writeError(w, r, "fetching users", err)
		return
	}
	if users == nil {
		users = []models.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body, "Please fill the request"); err != nil {
		s.writeError(w, r, "create user", err)
		return
	}

	user, err := s.users.Register(r.Context(), body.Username, body.Email, body.Password)
	if err != nil {
		s.writeError(w, r, "create user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User created", "user": user})
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID   string `json:"userId"`
		Username string `json:"username"`
	}
	if err := decodeBody(r, &body, "Please fill the request"); err != nil {
		s.writeError(w, r, "update user", err)
		return
	}

	user, err := s.users.Update(r.Context(), body.UserID, body.Username)
	if err != nil {
		s.writeError(w, r, "update user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User is updated", "user": user})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.users.Delete(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		s.writeError(w, r, "delete user", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "User deleted", "user": user})
}
