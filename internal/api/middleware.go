// File: internal/api/middleware.go
package api

import (
	"log"
	"net/http"
	"time"
)

// LoggingMiddleware logs one access line per request, after the response is written.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := NewStatusResponseWriter(w)
		next.ServeHTTP(srw, r)
		log.Printf("%s - \"%s %s %s\" %d (Duration: %s)", r.RemoteAddr, r.Method, r.RequestURI, r.Proto, srw.statusCode, time.Since(start))
	})
}

// StatusResponseWriter wraps ResponseWriter to capture status code.
type StatusResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

// NewStatusResponseWriter creates a new StatusResponseWriter
func NewStatusResponseWriter(w http.ResponseWriter) *StatusResponseWriter {
	return &StatusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records the first status code written.
func (srw *StatusResponseWriter) WriteHeader(code int) {
	if !srw.wroteHeader {
		srw.statusCode = code
		srw.wroteHeader = true
	}
	srw.ResponseWriter.WriteHeader(code)
}

// Write marks the header as written; an implicit header is always 200.
func (srw *StatusResponseWriter) Write(b []byte) (int, error) {
	srw.wroteHeader = true
	return srw.ResponseWriter.Write(b)
}

// StatusCode returns the status sent to the client.
func (srw *StatusResponseWriter) StatusCode() int { return srw.statusCode }
