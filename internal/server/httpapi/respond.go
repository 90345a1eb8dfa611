package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/blogkeeper/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps the error taxonomy onto the wire. Client errors (validation,
// not found, bad credentials) are JSON {message} bodies; anything unexpected
// is a plain-text 500 prefixed with the component label.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, component string, err error) {
	var ve *common.ValidationError
	var nf *common.NotFoundError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": ve.Message})
	case errors.As(err, &nf):
		// Absent and foreign-owned share one public face; the distinction
		// only survives in the log.
		s.logger.Debug(r.Context(), "lookup missed", "component", component, "entity", string(nf.Entity), "scoped", nf.Scoped)
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": nf.Message()})
	case errors.Is(err, common.ErrorUnauthenticated):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "unauthenticated"})
	default:
		s.logger.Error(r.Context(), "request failed", "component", component, "error", err.Error())
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Error in %s %s", component, err.Error())
	}
}

// decodeBody unmarshals a JSON request body; malformed bodies surface as the
// same client error as missing required fields.
func decodeBody(r *http.Request, v any, message string) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return common.NewValidationError(message)
	}
	return nil
}
