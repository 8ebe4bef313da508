package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ananya178/spacex-launch-prediction/domain"
	"github.com/Ananya178/spacex-launch-prediction/render"
)

var renderFlags struct {
	site   string
	orbit  string
	format string
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the launch chart for one selection",
	Long:  "Run one render event and print the chart as JSON (default), SVG or the full HTML page.",
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVar(&renderFlags.site, "site", domain.AllOption, "Launch site value")
	f.StringVar(&renderFlags.orbit, "orbit", domain.AllOption, "Orbit value")
	f.StringVar(&renderFlags.format, "format", "json", "Output format: json, svg or html")
}

func runRender(cmd *cobra.Command, _ []string) error {
	dash, err := openDashboard(cmd)
	if err != nil {
		return err
	}
	defer dash.Close()

	event, err := dash.Render(cmd.Context(), domain.FilterSelection{
		Site:  renderFlags.site,
		Orbit: renderFlags.orbit,
	})
	if err != nil {
		return err
	}

	var body []byte
	switch renderFlags.format {
	case "json":
		body, err = json.Marshal(event)
	case "svg":
		body, err = render.BarChartSVG(event.Chart)
	case "html":
		var sites, orbits []domain.Option
		if sites, err = dash.Options(domain.FieldLaunchSite); err != nil {
			return err
		}
		if orbits, err = dash.Options(domain.FieldOrbit); err != nil {
			return err
		}
		body, err = render.Page(render.PageData{
			Heading:   dash.Heading(),
			Sites:     sites,
			Orbits:    orbits,
			Selection: event.Selection,
			Summary:   event.Summary,
			Chart:     event.Chart,
		})
	default:
		return fmt.Errorf("unknown format %q (want json, svg or html)", renderFlags.format)
	}
	if err != nil {
		return fmt.Errorf("rendering %s: %w", renderFlags.format, err)
	}

	pretty, err := render.Prettify(body)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(pretty))
	return nil
}
