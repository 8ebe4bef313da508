package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var statusFlags struct {
	jsonOutput bool
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration and dataset statistics",
	RunE:  runStatus,
}

func init() {
	f := statusCmd.Flags()
	f.BoolVar(&statusFlags.jsonOutput, "json", false, "Print statistics as JSON")
}

func runStatus(cmd *cobra.Command, _ []string) error {
	dash, err := openDashboard(cmd)
	if err != nil {
		return err
	}
	defer dash.Close()

	stats, err := dash.Stats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if statusFlags.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	fmt.Fprintf(out, "Config dir:   %s\n", dash.ConfigDir)
	fmt.Fprintf(out, "Database:     %s\n", dash.Config.DatabasePath())
	fmt.Fprintf(out, "Listen:       %s\n", dash.Config.ListenAddress())
	fmt.Fprintf(out, "Records:      %d\n", stats.Records)
	fmt.Fprintf(out, "Stored:       %d launches, %d successful\n", stats.StoredLaunches, stats.StoredSuccessful)
	fmt.Fprintf(out, "Logs:         %d\n", stats.StoredLogs)
	fmt.Fprintf(out, "Extensions:   %d\n", stats.ExtensionsEnabled)
	return nil
}
