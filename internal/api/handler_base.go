// File: internal/api/handler_base.go
package api

// PingResponse is the body of every successful ping. It is never mutated.
type PingResponse struct {
	Message string `json:"message"`
}

// APIHandler holds what the handlers need. There is no shared mutable state;
// each listener gets its own handler.
type APIHandler struct {
	response PingResponse
}

// NewAPIHandler creates a handler that answers pings with "pong".
func NewAPIHandler() *APIHandler {
	return &APIHandler{response: PingResponse{Message: "pong"}}
}
