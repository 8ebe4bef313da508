// Package server exposes the dashboard over HTTP: the HTML page, a JSON API,
// an SVG chart endpoint and Prometheus metrics.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	spacex "github.com/Ananya178/spacex-launch-prediction"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Ananya178/spacex-launch-prediction/render"
	"github.com/a-h/templ"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dashboard is the part of spacex.Dashboard the server needs.
type Dashboard interface {
	Render(ctx context.Context, sel domain.FilterSelection) (spacex.RenderEvent, error)
	Options(field domain.Field) ([]domain.Option, error)
	Summary(sel domain.FilterSelection) domain.LaunchSummary
	Heading() string
}

// Server serves one dashboard. It implements http.Handler.
type Server struct {
	Dashboard Dashboard
	Logger    *slog.Logger
	Registry  *prometheus.Registry

	metrics *metrics
	handler http.Handler
}

// OptionsResponse is the body of GET /api/options.
type OptionsResponse struct {
	Sites  []domain.Option `json:"sites"`
	Orbits []domain.Option `json:"orbits"`
}

// New creates a server for dash and applies options.
func New(dash Dashboard, options ...func(*Server) error) (*Server, error) {
	if dash == nil {
		return nil, errors.New("dashboard is nil")
	}

	server := &Server{
		Dashboard: dash,
		Logger:    slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		if err := option(server); err != nil {
			return nil, err
		}
	}
	if server.Registry == nil {
		server.Registry = prometheus.NewRegistry()
	}

	m, err := newMetrics(server.Registry)
	if err != nil {
		return nil, err
	}
	server.metrics = m

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handlePage)
	mux.HandleFunc("GET /api/options", server.handleOptions)
	mux.HandleFunc("GET /api/chart", server.handleChart)
	mux.HandleFunc("GET /api/summary", server.handleSummary)
	mux.HandleFunc("GET /chart.svg", server.handleChartSVG)
	mux.HandleFunc("GET /healthz", server.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(server.Registry, promhttp.HandlerOpts{}))

	server.handler = server.instrument(compress(mux))
	return server, nil
}

// WithLogger sets the request logger. A nil logger discards all output.
func WithLogger(logger *slog.Logger) func(*Server) error {
	return func(server *Server) error {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		server.Logger = logger
		return nil
	}
}

// WithRegistry registers the server metrics in registry instead of a private one.
func WithRegistry(registry *prometheus.Registry) func(*Server) error {
	return func(server *Server) error {
		if registry == nil {
			return errors.New("registry is nil")
		}
		server.Registry = registry
		return nil
	}
}

func (server *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	server.handler.ServeHTTP(w, r)
}

func selectionFromRequest(r *http.Request) domain.FilterSelection {
	query := r.URL.Query()
	return domain.FilterSelection{
		Site:  query.Get("site"),
		Orbit: query.Get("orbit"),
	}.Normalize()
}

// render runs one render event and records its metrics.
func (server *Server) render(r *http.Request) (spacex.RenderEvent, error) {
	start := time.Now()
	event, err := server.Dashboard.Render(r.Context(), selectionFromRequest(r))
	server.metrics.renderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		server.metrics.renders.WithLabelValues("error").Inc()
		return event, err
	}

	outcome := "non_empty"
	if event.Chart.Empty() {
		outcome = "empty"
	}
	server.metrics.renders.WithLabelValues(outcome).Inc()
	return event, nil
}

func (server *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	event, err := server.render(r)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	sites, err := server.Dashboard.Options(domain.FieldLaunchSite)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	orbits, err := server.Dashboard.Options(domain.FieldOrbit)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}

	page := render.PageComponent(render.PageData{
		Heading:   server.Dashboard.Heading(),
		Sites:     sites,
		Orbits:    orbits,
		Selection: event.Selection,
		Summary:   event.Summary,
		Chart:     event.Chart,
	})
	templ.Handler(page, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			server.error(w, r, http.StatusInternalServerError, err)
		})
	})).ServeHTTP(w, r)
}

func (server *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sites, err := server.Dashboard.Options(domain.FieldLaunchSite)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	orbits, err := server.Dashboard.Options(domain.FieldOrbit)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	server.writeJSON(w, r, http.StatusOK, OptionsResponse{Sites: sites, Orbits: orbits})
}

func (server *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	event, err := server.render(r)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	server.writeJSON(w, r, http.StatusOK, event.Chart)
}

func (server *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	server.writeJSON(w, r, http.StatusOK, server.Dashboard.Summary(selectionFromRequest(r)))
}

func (server *Server) handleChartSVG(w http.ResponseWriter, r *http.Request) {
	event, err := server.render(r)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	svg, err := render.BarChartSVG(event.Chart)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	writeBody(w, http.StatusOK, svg)
}

func (server *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeBody(w, http.StatusOK, []byte("ok\n"))
}

func (server *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, value any) {
	body, err := json.Marshal(value)
	if err != nil {
		server.error(w, r, http.StatusInternalServerError, err)
		return
	}
	writeBody(w, status, body)
}

func (server *Server) error(w http.ResponseWriter, r *http.Request, status int, err error) {
	server.Logger.Error("handling request", "method", r.Method, "path", r.URL.Path, "error", err)
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(http.StatusText(status) + "\n"))
}
