package main

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/internal/runfile"
	"github.com/spf13/cobra"
)

type runFlags struct {
	file          string
	maxIterations int
	tolerance     float64
	format        string
	codecName     string
	trace         bool
}

func (rf *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rf.maxIterations, "max-iterations", lloyd.DefaultMaxIterations, "Iteration budget")
	cmd.Flags().Float64Var(&rf.tolerance, "tolerance", lloyd.DefaultTolerance, "Stop once every centroid moves less than this")
	cmd.Flags().StringVar(&rf.format, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&rf.trace, "trace", false, "Include the iteration trace in JSON output")
	cmd.Flags().StringVar(&rf.codecName, "codec", codec.Default.Name(),
		"JSON codec for run files and reports: "+strings.Join(codec.Names, " or "))
}

func (rf *runFlags) resolveCodec() (codec.Codec, error) {
	c, ok := codec.ByName(rf.codecName)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (want %s)", rf.codecName, strings.Join(codec.Names, " or "))
	}
	return c, nil
}

// options returns the flags the user set explicitly, so they override
// values from a run file.
func (rf *runFlags) options(cmd *cobra.Command) []lloyd.Option {
	var opts []lloyd.Option
	if cmd.Flags().Changed("max-iterations") {
		opts = append(opts, lloyd.WithMaxIterations(rf.maxIterations))
	}
	if cmd.Flags().Changed("tolerance") {
		opts = append(opts, lloyd.WithTolerance(rf.tolerance))
	}
	return opts
}

func newRunCmd(gf *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster the points of a TOML or JSON run file",
		Long: `Cluster the points of a run file.

The run file lists the points, the seed centroids and optionally k,
max_iterations and tolerance:

  k = 2
  points = [[1, 1], [2, 1], [4, 3], [5, 4]]
  centroids = [[1.5, 1], [4.5, 3.5]]

Flags given on the command line override values from the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rf.resolveCodec()
			if err != nil {
				return err
			}

			f, err := runfile.Load(rf.file, c)
			if err != nil {
				return err
			}

			points, centroids, err := f.Inputs()
			if err != nil {
				return err
			}

			opts := append(f.Options(), rf.options(cmd)...)
			return execute(cmd, gf, &rf, points, *f.K, centroids, opts)
		},
	}

	cmd.Flags().StringVarP(&rf.file, "file", "f", "", "Run file (.toml or .json)")
	_ = cmd.MarkFlagRequired("file")
	rf.register(cmd)

	return cmd
}

func newExampleCmd(gf *globalFlags) *cobra.Command {
	var rf runFlags

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Cluster the four-point course dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			points := []lloyd.Point{lloyd.Pt(1, 1), lloyd.Pt(2, 1), lloyd.Pt(4, 3), lloyd.Pt(5, 4)}
			centroids := []lloyd.Point{lloyd.Pt(1.5, 1), lloyd.Pt(4.5, 3.5)}

			opts := []lloyd.Option{
				lloyd.WithMaxIterations(rf.maxIterations),
				lloyd.WithTolerance(rf.tolerance),
			}
			return execute(cmd, gf, &rf, points, 2, centroids, opts)
		},
	}

	rf.register(cmd)

	return cmd
}

func execute(cmd *cobra.Command, gf *globalFlags, rf *runFlags, points []lloyd.Point, k int, centroids []lloyd.Point, opts []lloyd.Option) error {
	logger, err := gf.logger()
	if err != nil {
		return err
	}

	c, err := rf.resolveCodec()
	if err != nil {
		return err
	}

	var write func(*lloyd.Result) error
	switch rf.format {
	case "text":
		write = func(res *lloyd.Result) error { return writeText(cmd.OutOrStdout(), res) }
		opts = append(opts, lloyd.WithTrace())
	case "json":
		write = func(res *lloyd.Result) error { return writeJSON(cmd.OutOrStdout(), c, res) }
		if rf.trace {
			opts = append(opts, lloyd.WithTrace())
		}
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", rf.format)
	}

	opts = append(opts, lloyd.WithLogger(logger))

	res, err := lloyd.Run(points, k, centroids, opts...)
	if err != nil {
		return fmt.Errorf("clustering failed: %w", err)
	}

	return write(res)
}
