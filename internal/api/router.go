// File: internal/api/router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RouterOptions controls per-listener behaviour of the router.
type RouterOptions struct {
	LogRequests bool
}

// NewRouter builds the request handler for one Ping Responder.
//
// Only GET /ping is routed. The request target is matched exactly as the
// client sent it: no cleaning, no trailing-slash redirect, no case folding,
// no percent-decoding, and a query string or absolute-form target makes it
// a different request target. Other methods on /ping fall through to the
// router's default 405.
func NewRouter(opts RouterOptions) http.Handler {
	router := mux.NewRouter()
	router.SkipClean(true)
	apiHandler := NewAPIHandler()

	router.NotFoundHandler = http.HandlerFunc(apiHandler.NotFoundHandler)

	router.HandleFunc("/ping", apiHandler.PingHandler).
		Methods(http.MethodGet).
		MatcherFunc(exactTarget("/ping"))

	if opts.LogRequests {
		// Wrapped outside the router so 404s and 405s are logged too;
		// mux middleware only runs on matched routes.
		return LoggingMiddleware(router)
	}
	return router
}

// exactTarget matches the raw request target; mux itself only sees the decoded path.
func exactTarget(target string) mux.MatcherFunc {
	return func(r *http.Request, _ *mux.RouteMatch) bool {
		return r.RequestURI == target
	}
}
