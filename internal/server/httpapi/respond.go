// Package httpapi exposes the Pennywise REST surface: auth and account
// endpoints, protected finance endpoints, and the middleware gate that
// validates access tokens.
package httpapi

import (
	"encoding/json"
	"net/http"
)

// errorResponse is the uniform error body: {"error": "..."}.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse is the body for endpoints that only acknowledge.
type successResponse struct {
	Success bool `json:"success"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20)).Decode(dst)
}
