package httpapi

import "net/http"

// handleLogin is the only route outside the access gate.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body, "Please fill request"); err != nil {
		s.writeError(w, r, "login", err)
		return
	}

	user, token, err := s.users.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		s.writeError(w, r, "login", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": user, "accessToken": token})
}
