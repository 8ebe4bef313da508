// launchdash serves and queries the SpaceX launch analytics dashboard.
//
// Usage:
//
//	launchdash serve   [--address=<ip>] [--port=<port>]
//	launchdash render  [--site=<site>] [--orbit=<orbit>] [--format=json|svg|html]
//	launchdash options
//	launchdash logs
//	launchdash status
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	configDir string
	verbose   bool
}

var rootCmd = &cobra.Command{
	Use:   "launchdash",
	Short: "SpaceX launch analytics dashboard",
	Long:  "launchdash renders launch counts by site for a launch-site and orbit selection,\nas an HTML dashboard, a JSON API or an SVG chart.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&rootFlags.configDir, "config-dir", "", "Configuration directory (default: <user config dir>/launchdash)")
	f.BoolVarP(&rootFlags.verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
