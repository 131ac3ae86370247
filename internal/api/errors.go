package api

import (
	"encoding/json"
	"net/http"
)

// Error represents a structured error response. The single detail field is
// the contract the dashboard frontend expects on every non-2xx response.
type Error struct {
	Detail string `json:"detail"`
}

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeError writes a structured error response.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, Error{Detail: detail})
}

// writeBadRequest writes a 400 error response.
func writeBadRequest(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusBadRequest, detail)
}

// writeNotFound writes a 404 error response.
func writeNotFound(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusNotFound, detail)
}

// writeConflict writes a 409 error response.
func writeConflict(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusConflict, detail)
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter, detail string) {
	writeError(w, http.StatusInternalServerError, detail)
}
