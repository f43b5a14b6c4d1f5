// Package tools hosts the tool-invocation surface: a thread-safe tool
// registry and a small HTTP server that dispatches JSON tool calls,
// alongside the service's health and metrics endpoints.
package tools

import (
	"encoding/json"
	"net/http"
)

// ToolResponse is the JSON envelope every tool call answers with.
type ToolResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// WriteData writes a successful tool response.
func WriteData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, ToolResponse{Success: true, Data: data})
}

// WriteError writes a failed tool response with the given HTTP status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ToolResponse{Success: false, Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, resp ToolResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
