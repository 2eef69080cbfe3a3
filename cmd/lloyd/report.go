package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hupe1980/lloyd"
	"github.com/hupe1980/lloyd/codec"
	"github.com/hupe1980/lloyd/model"
)

// writeText prints the trace and final result in the layout of the
// classroom script: one block per iteration, then the final clusters
// labelled from 1.
func writeText(w io.Writer, res *lloyd.Result) error {
	bw := bufio.NewWriter(w)

	for _, s := range res.Trace {
		fmt.Fprintf(bw, "Iteration %d:\n", s.Iteration)
		fmt.Fprintf(bw, "Centroids: %s\n", model.FormatPoints(s.Centroids))
		fmt.Fprintf(bw, "Clusters: %s\n", s.Assignment)
	}

	if res.Converged {
		fmt.Fprintln(bw, "\nConvergence reached.")
	} else {
		fmt.Fprintf(bw, "\nStopped after %d iterations without converging.\n", res.Iterations)
	}

	fmt.Fprintln(bw, "\nFinal results:")
	fmt.Fprintln(bw, "Clusters:")
	for i := range res.Assignment.K() {
		fmt.Fprintf(bw, "Cluster %d: %s\n", i+1, model.FormatPoints(res.Assignment.Cluster(i)))
	}
	fmt.Fprintln(bw, "Final centroids:")
	fmt.Fprintln(bw, model.FormatPoints(res.Centroids))

	return bw.Flush()
}

type clusterReport struct {
	Cluster  int          `json:"cluster"`
	Members  []uint32     `json:"members"`
	Points   [][2]float64 `json:"points"`
	Centroid [2]float64   `json:"centroid"`
}

type iterationReport struct {
	Iteration int             `json:"iteration"`
	Movement  []float64       `json:"movement"`
	Clusters  []clusterReport `json:"clusters"`
}

type report struct {
	Converged  bool              `json:"converged"`
	Iterations int               `json:"iterations"`
	Inertia    float64           `json:"inertia"`
	Clusters   []clusterReport   `json:"clusters"`
	Trace      []iterationReport `json:"trace,omitempty"`
}

func newReport(res *lloyd.Result) report {
	r := report{
		Converged:  res.Converged,
		Iterations: res.Iterations,
		Inertia:    res.Inertia(),
		Clusters:   clusterReports(res.Assignment, res.Centroids),
	}
	for _, s := range res.Trace {
		r.Trace = append(r.Trace, iterationReport{
			Iteration: s.Iteration,
			Movement:  s.Movement,
			Clusters:  clusterReports(s.Assignment, s.Centroids),
		})
	}
	return r
}

func clusterReports(a model.Assignment, centroids []model.Point) []clusterReport {
	out := make([]clusterReport, a.K())
	for i := range out {
		pts := a.Cluster(i)
		cr := clusterReport{
			Cluster:  i,
			Members:  a.Members(i).ToArray(),
			Points:   make([][2]float64, len(pts)),
			Centroid: [2]float64{centroids[i].X, centroids[i].Y},
		}
		for j, p := range pts {
			cr.Points[j] = [2]float64{p.X, p.Y}
		}
		out[i] = cr
	}
	return out
}

func writeJSON(w io.Writer, c codec.Codec, res *lloyd.Result) error {
	data, err := c.MarshalIndent(newReport(res), "", "  ")
	if err != nil {
		return fmt.Errorf("encode report (%s): %w", c.Name(), err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
