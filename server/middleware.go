package server

import (
	"io"
	"net/http"
	"strconv"

	"github.com/andybalholm/brotli"
	"github.com/gabriel-vasile/mimetype"
)

// compressWriter sends the response body through a brotli or gzip encoder.
type compressWriter struct {
	http.ResponseWriter
	encoder io.Writer
}

func (cw *compressWriter) Write(b []byte) (int, error) {
	return cw.encoder.Write(b)
}

// compress encodes responses with brotli or gzip, whichever the client accepts first.
// /metrics is left to promhttp, which negotiates its own encoding.
func compress(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		encoder := brotli.HTTPCompressor(w, r)
		defer encoder.Close()

		w.Header().Del("Content-Length")
		next.ServeHTTP(&compressWriter{ResponseWriter: w, encoder: encoder}, r)
	})
}

// statusRecorder keeps the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(status int) {
	if sr.status == 0 {
		sr.status = status
	}
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	if sr.status == 0 {
		sr.status = http.StatusOK
	}
	return sr.ResponseWriter.Write(b)
}

// instrument counts requests by matched route and status and logs each one.
func (server *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		status := recorder.status
		if status == 0 {
			status = http.StatusOK
		}
		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}

		server.metrics.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		server.Logger.Debug("handled request", "method", r.Method, "path", r.URL.Path, "route", route, "status", status)
	})
}

// writeBody writes body with a Content-Type detected from its first bytes.
func writeBody(w http.ResponseWriter, status int, body []byte) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", mimetype.Detect(body).String())
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
