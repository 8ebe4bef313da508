package spacex

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Ananya178/spacex-launch-prediction/core"
	"github.com/Ananya178/spacex-launch-prediction/dataset"
	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Ananya178/spacex-launch-prediction/extensions"
	"github.com/Ananya178/spacex-launch-prediction/pipeline"
	"github.com/google/uuid"
)

// WithConfigDir loads config.yaml from appConfigDir, creating the directory and
// a default configuration file when they do not exist.
func WithConfigDir(appConfigDir string) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		cfg, err := LoadConfig(appConfigDir)
		if err != nil {
			return err
		}
		dashboard.ConfigDir = appConfigDir
		dashboard.Config = cfg
		return nil
	}
}

// WithLogger sets the structured logger. A nil logger discards all output.
func WithLogger(logger *slog.Logger) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		dashboard.Logger = logger
		return nil
	}
}

// WithRepo sets the repository, closing any previous one, and reloads the
// store from the repository's launch table.
func WithRepo(repo Repository) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if repo == nil {
			return errors.New("repository is nil")
		}
		if dashboard.Repo != nil {
			if err := dashboard.Repo.Close(); err != nil {
				return fmt.Errorf("closing previous repository : %w", err)
			}
			dashboard.Repo = nil
		}

		store, err := dataset.Load(repo)
		if err != nil {
			return err
		}
		dashboard.Repo = repo
		dashboard.Store = store
		dashboard.Pipeline = pipeline.New(store)
		dashboard.Logger.Info("loaded dataset", "records", store.Len())
		return nil
	}
}

// WithStore replaces the dataset store without touching the repository.
func WithStore(store *dataset.Store) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if store == nil {
			return errors.New("store is nil")
		}
		dashboard.Store = store
		dashboard.Pipeline = pipeline.New(store)
		return nil
	}
}

// WithExtension prepares ext in a sandboxed Lua runtime and calls it after every render.
func WithExtension(ext *domain.Extension, options ...func(*extensions.Runtime) error) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if ext == nil {
			return errors.New("extension is nil")
		}
		if dashboard.Extension != nil {
			return fmt.Errorf("dashboard already has extension %s loaded", dashboard.Extension.Data.Name)
		}

		// Printed lines become dashboard logs unless the caller handles them.
		runtimeOptions := options
		if len(runtimeOptions) == 0 {
			runtimeOptions = []func(*extensions.Runtime) error{
				extensions.ExtensionWithLogHandler(func(log extensions.ExtensionLog) error {
					return dashboard.WriteLog("INFO", log.Text, core.LogWithExtensionID(ext.ID))
				}),
			}
		}
		runtime, err := extensions.NewRuntime(ext, dashboard, runtimeOptions...)
		if err != nil {
			return fmt.Errorf("preparing extension %s : %w", ext.Name, err)
		}
		dashboard.Extension = runtime
		dashboard.Logger.Info("loaded extension", "name", ext.Name, "id", ext.ID)
		return nil
	}
}

// WithExtensionFile reads a Lua script from path and loads it with WithExtension.
func WithExtensionFile(path string, options ...func(*extensions.Runtime) error) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		code, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading extension %s : %w", path, err)
		}
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generating extension id : %w", err)
		}
		ext := &domain.Extension{
			ID:         id,
			Name:       filepath.Base(path),
			LuaContent: string(code),
		}
		return WithExtension(ext, options...)(dashboard)
	}
}

// WithRenderHandler sets the handler executed after every render event.
func WithRenderHandler(handler func(event RenderEvent) error) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if dashboard.OnRender != nil {
			return errors.New("dashboard already has a render handler defined")
		}
		dashboard.OnRender = handler
		return nil
	}
}

// WithLogHandler sets the handler executed on each log entry.
func WithLogHandler(handler func(log domain.Log) error) func(*Dashboard) error {
	return func(dashboard *Dashboard) error {
		if dashboard.OnLog != nil {
			return errors.New("dashboard already has a log handler defined")
		}
		dashboard.OnLog = handler
		return nil
	}
}
