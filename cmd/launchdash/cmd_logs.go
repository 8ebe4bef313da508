package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var logsFlags struct {
	level string
}

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show stored dashboard logs",
	RunE:  runLogs,
}

func init() {
	f := logsCmd.Flags()
	f.StringVar(&logsFlags.level, "level", "", "Only show entries at this level (DEBUG, INFO, WARN, ERROR)")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	dash, err := openDashboard(cmd)
	if err != nil {
		return err
	}
	defer dash.Close()

	logs, err := dash.Logs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tLEVEL\tRENDER\tMESSAGE")
	for _, log := range logs {
		if logsFlags.level != "" && log.Level != logsFlags.level {
			continue
		}
		render := "-"
		if log.RenderID != nil {
			render = log.RenderID.String()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", log.Timestamp.Format(time.RFC3339), log.Level, render, log.Message)
	}
	return w.Flush()
}
