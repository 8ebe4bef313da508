package spacex

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Ananya178/spacex-launch-prediction/core"
	"github.com/Ananya178/spacex-launch-prediction/dataset"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Ananya178/spacex-launch-prediction/extensions"
	"github.com/Ananya178/spacex-launch-prediction/pipeline"
	"github.com/google/uuid"
)

// ErrNoRepository is returned by operations that need persistent storage when none is configured.
var ErrNoRepository = errors.New("dashboard has no repository")

// Repository is the storage the dashboard needs. It is implemented by db.Repository.
type Repository interface {
	domain.LaunchRepository
	domain.LogRepository
	domain.StatsRepository
	Close() error
}

// RenderEvent is the result of one dropdown change: the normalized selection and everything rendered for it.
type RenderEvent struct {
	ID         uuid.UUID               `json:"id"`
	Selection  domain.FilterSelection  `json:"selection"`
	Chart      domain.ChartDescription `json:"chart"`
	Summary    domain.LaunchSummary    `json:"summary"`
	RenderedAt time.Time               `json:"rendered_at"`
}

// Stats reports how much data the dashboard holds.
type Stats struct {
	Records           int `json:"records"`            // Records in the in-memory store
	StoredLaunches    int `json:"stored_launches"`    // Rows in the launch table
	StoredSuccessful  int `json:"stored_successful"`  // Rows in the launch table with a successful outcome
	StoredLogs        int `json:"stored_logs"`        // Rows in the logs table
	ExtensionsEnabled int `json:"extensions_enabled"` // 1 when a Lua extension is loaded
}

// Dashboard wires the dataset store, the filter-render pipeline, the optional
// Lua extension and persistent storage into a single render entry point.
type Dashboard struct {
	ConfigDir string                  // The configuration directory, empty when the dashboard runs without one
	Config    *Config                 // Loaded configuration, nil without a config directory
	Repo      Repository              // Persistent storage, nil for an in-memory dashboard
	Store     *dataset.Store          // The immutable launch table
	Pipeline  *pipeline.Pipeline      // Filter-render pipeline over Store
	Extension *extensions.Runtime     // Optional Lua extension called after every render
	Logger    *slog.Logger            // Structured logger
	OnRender  func(RenderEvent) error // Called after every render event
	OnLog     func(domain.Log) error  // Called for every log entry written through WriteLog

	mu sync.Mutex
}

// New creates a dashboard over the built-in sample dataset and applies options.
func New(options ...func(*Dashboard) error) (*Dashboard, error) {
	store := dataset.Sample()
	dashboard := &Dashboard{
		Store:    store,
		Pipeline: pipeline.New(store),
		Logger:   slog.New(slog.DiscardHandler),
	}
	if err := dashboard.WithOptions(options...); err != nil {
		return nil, err
	}
	return dashboard, nil
}

// WithOptions applies options to an existing dashboard.
func (dashboard *Dashboard) WithOptions(options ...func(*Dashboard) error) error {
	for _, option := range options {
		if err := option(dashboard); err != nil {
			return fmt.Errorf("applying option on dashboard : %w", err)
		}
	}
	return nil
}

// Render handles one render event. Events are serialized: a second call blocks
// until the first has returned. Unknown selection values produce an empty chart.
// An extension failure is logged and the pipeline chart is kept.
func (dashboard *Dashboard) Render(ctx context.Context, sel domain.FilterSelection) (RenderEvent, error) {
	dashboard.mu.Lock()
	defer dashboard.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return RenderEvent{}, fmt.Errorf("rendering chart : %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return RenderEvent{}, fmt.Errorf("generating render id : %w", err)
	}

	sel = sel.Normalize()
	chart := dashboard.Pipeline.Render(sel)

	if dashboard.Extension != nil {
		processed, err := dashboard.Extension.ProcessChart(sel, chart)
		if err != nil {
			logErr := dashboard.WriteLog("ERROR", err.Error(),
				core.LogWithRenderID(id),
				core.LogWithExtensionID(dashboard.Extension.Data.ID),
			)
			if logErr != nil {
				dashboard.Logger.Error("writing extension error", "error", logErr)
			}
		} else {
			chart = processed
		}
	}

	event := RenderEvent{
		ID:         id,
		Selection:  sel,
		Chart:      chart,
		Summary:    dashboard.Pipeline.Summarize(sel),
		RenderedAt: time.Now(),
	}

	dashboard.Logger.Debug("rendered chart",
		"render_id", id,
		"site", sel.Site,
		"orbit", sel.Orbit,
		"categories", len(chart.Categories),
		"total", chart.Total(),
	)

	if dashboard.OnRender != nil {
		if err := dashboard.OnRender(event); err != nil {
			return event, fmt.Errorf("render handler : %w", err)
		}
	}

	return event, nil
}

// Options returns the dropdown options for field, "All" first.
func (dashboard *Dashboard) Options(field domain.Field) ([]domain.Option, error) {
	return dashboard.Store.Options(field)
}

// Summary aggregates the launches matching sel.
func (dashboard *Dashboard) Summary(sel domain.FilterSelection) domain.LaunchSummary {
	return dashboard.Pipeline.Summarize(sel.Normalize())
}

// Heading returns the configured page heading, or an empty string for the default.
func (dashboard *Dashboard) Heading() string {
	if dashboard.Config == nil {
		return ""
	}
	return dashboard.Config.Title
}

// Logs returns every stored log entry, oldest first.
func (dashboard *Dashboard) Logs() ([]*domain.Log, error) {
	if dashboard.Repo == nil {
		return nil, ErrNoRepository
	}
	logs, err := dashboard.Repo.GetLogs()
	if err != nil {
		return nil, fmt.Errorf("getting logs : %w", err)
	}
	return logs, nil
}

// Stats counts the records in the store and, when a repository is configured, the stored rows.
func (dashboard *Dashboard) Stats() (Stats, error) {
	stats := Stats{Records: dashboard.Store.Len()}
	if dashboard.Extension != nil {
		stats.ExtensionsEnabled = 1
	}
	if dashboard.Repo == nil {
		return stats, nil
	}

	var err error
	if stats.StoredLaunches, err = dashboard.Repo.CountLaunches(); err != nil {
		return stats, fmt.Errorf("counting launches : %w", err)
	}
	if stats.StoredSuccessful, err = dashboard.Repo.CountSuccessful(); err != nil {
		return stats, fmt.Errorf("counting successful launches : %w", err)
	}
	if stats.StoredLogs, err = dashboard.Repo.CountLogs(); err != nil {
		return stats, fmt.Errorf("counting logs : %w", err)
	}
	return stats, nil
}

// Close releases the extension and the repository.
func (dashboard *Dashboard) Close() error {
	dashboard.mu.Lock()
	defer dashboard.mu.Unlock()

	if dashboard.Extension != nil {
		dashboard.Extension.Close()
		dashboard.Extension = nil
	}
	if dashboard.Repo != nil {
		err := dashboard.Repo.Close()
		dashboard.Repo = nil
		if err != nil {
			return fmt.Errorf("closing repository : %w", err)
		}
	}
	return nil
}
