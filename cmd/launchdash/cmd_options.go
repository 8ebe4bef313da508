package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Ananya178/spacex-launch-prediction/domain"
)

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the launch site and orbit dropdown options",
	RunE:  runOptions,
}

func runOptions(cmd *cobra.Command, _ []string) error {
	dash, err := openDashboard(cmd)
	if err != nil {
		return err
	}
	defer dash.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tLABEL\tVALUE")
	for _, field := range []domain.Field{domain.FieldLaunchSite, domain.FieldOrbit} {
		options, err := dash.Options(field)
		if err != nil {
			return err
		}
		for _, option := range options {
			fmt.Fprintf(w, "%s\t%s\t%s\n", field, option.Label, option.Value)
		}
	}
	return w.Flush()
}
