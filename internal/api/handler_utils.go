// File: internal/api/handler_utils.go
package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// respondWithJSON sends a JSON response with the given status code and payload.
// encoding/json output is deterministic for a fixed payload, so repeated calls
// produce identical bytes.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("API Error: Failed to marshal JSON response: %v", err)
		respondEmpty(w, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Printf("API Error: Failed to write response: %v", err)
	}
}

// respondEmpty writes only a status line; net/http adds the protocol defaults.
func respondEmpty(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}
