// Package httpjson has helpers for writing JSON API responses.
package httpjson

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON error body returned by API handlers.
type ErrorResponse struct {
	// Error is the human-readable error message.
	Error string `json:"error"`

	// Kind distinguishes error categories the caller may branch on, e.g.
	// "schema_validation". Empty for generic failures.
	Kind string `json:"kind,omitempty"`
}

// Write writes v as a JSON response with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("httpjson: encoding response", "error", err)
	}
}

// Error writes a JSON error response with a generic kind.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, ErrorResponse{Error: msg})
}

// ErrorKind writes a JSON error response with a caller-distinguishable kind.
func ErrorKind(w http.ResponseWriter, status int, msg string, kind string) {
	Write(w, status, ErrorResponse{Error: msg, Kind: kind})
}
