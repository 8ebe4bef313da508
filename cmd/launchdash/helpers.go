package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	spacex "github.com/Ananya178/spacex-launch-prediction"
	"github.com/Ananya178/spacex-launch-prediction/db"
)

func configDir() (string, error) {
	if rootFlags.configDir != "" {
		return rootFlags.configDir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("finding user config dir: %w", err)
	}
	return filepath.Join(dir, "launchdash"), nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if rootFlags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openDashboard loads the configuration, opens the database and loads the
// configured extension. The caller closes the dashboard.
func openDashboard(cmd *cobra.Command) (*spacex.Dashboard, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}

	dash, err := spacex.New(
		spacex.WithLogger(newLogger(cmd)),
		spacex.WithConfigDir(dir),
	)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.New(dash.Config.DatabasePath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := dash.WithOptions(spacex.WithRepo(db.NewRepository(dbConn))); err != nil {
		dbConn.Close()
		return nil, err
	}
	if path := dash.Config.ExtensionPath(); path != "" {
		if err := dash.WithOptions(spacex.WithExtensionFile(path)); err != nil {
			dash.Close()
			return nil, err
		}
	}
	return dash, nil
}
