// File: internal/api/ping_handler.go
package api

import (
	"net/http"
)

// PingHandler responds to ping requests to check server health.
func (h *APIHandler) PingHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.response)
}

// NotFoundHandler answers every unknown request target with a bare 404.
func (h *APIHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, http.StatusNotFound)
}
