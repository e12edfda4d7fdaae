package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// writeJSON renders the payload; encoding failures are logged, not
// surfaced, since the status line has already been written.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write json response: %v", err)
	}
}

// writeError emits the uniform {"error": "..."} failure body.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
