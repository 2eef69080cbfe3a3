// Command lloyd clusters points in the plane with Lloyd's k-means algorithm
// and prints the iteration trace.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/lloyd"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	verbose   int
	logFormat string
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:   "lloyd",
		Short: "Deterministic k-means clustering of 2-D points",
		Long: `lloyd - Deterministic k-means clustering of 2-D points.

Points are partitioned around caller-seeded centroids by alternating
assignment and mean recomputation until the centroids stop moving.

Examples:
  lloyd example                       # Cluster the course dataset
  lloyd run --file run.toml           # Cluster points from a run file
  lloyd run -f run.json --format json # Emit the result as JSON`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().CountVarP(&gf.verbose, "verbose", "v", "Increase log verbosity (-v run summaries, -vv every iteration)")
	rootCmd.PersistentFlags().StringVar(&gf.logFormat, "log-format", "text", "Log format on stderr: text or json")

	rootCmd.AddCommand(newRunCmd(&gf))
	rootCmd.AddCommand(newExampleCmd(&gf))

	return rootCmd
}

func (gf *globalFlags) logger() (*lloyd.Logger, error) {
	level := slog.LevelWarn
	switch {
	case gf.verbose >= 2:
		level = slog.LevelDebug
	case gf.verbose == 1:
		level = slog.LevelInfo
	}

	switch gf.logFormat {
	case "text":
		return lloyd.NewTextLogger(level), nil
	case "json":
		return lloyd.NewJSONLogger(level), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", gf.logFormat)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
