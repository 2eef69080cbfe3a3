package lloyd

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/internal/kmeans"
	"github.com/hupe1980/lloyd/model"
	"gonum.org/v1/gonum/floats"
)

// Point is a location in the plane.
type Point = model.Point

// Assignment partitions a point set into k clusters indexed 0..k-1.
type Assignment = model.Assignment

// Snapshot is the observable state after one iteration.
type Snapshot = model.Snapshot

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return model.Pt(x, y) }

// Result is the outcome of Run.
type Result struct {
	// Assignment is the partition computed in the last iteration.
	Assignment Assignment
	// Centroids are the centroids recomputed in the last iteration.
	Centroids []Point
	// Iterations is the number of iterations executed.
	Iterations int
	// Converged reports whether the last iteration moved every centroid
	// by less than the tolerance.
	Converged bool
	// Trace holds one snapshot per iteration when WithTrace is set.
	Trace []Snapshot

	points    []Point
	tolerance float64
}

// Inertia returns the sum of squared distances of every point to the
// centroid of its cluster, measured against the final centroids.
func (r *Result) Inertia() float64 {
	return kmeans.Inertia(r.Assignment, r.Centroids)
}

// Stable runs one more assign and recompute cycle from the final centroids
// and reports whether every centroid moves by less than the tolerance.
// It reports false for a Result without centroids or points.
func (r *Result) Stable() bool {
	if len(r.Centroids) == 0 || len(r.points) == 0 {
		return false
	}
	next := kmeans.Recompute(kmeans.Assign(r.points, r.Centroids), r.Centroids)
	return floats.Max(kmeans.Movement(r.Centroids, next)) < r.tolerance
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return distance.Euclidean(a, b)
}

// Assign assigns every point to its nearest centroid. On exact ties the
// centroid with the lowest index wins. The result has len(centroids)
// clusters, some of which may be empty.
func Assign(points []Point, centroids []Point) (Assignment, error) {
	if len(centroids) == 0 {
		return Assignment{}, invalidArgument("centroids", "must not be empty")
	}
	return kmeans.Assign(points, centroids), nil
}

// RecomputeCentroids returns the mean of every cluster of a, keeping
// previous[i] for clusters that received no points.
func RecomputeCentroids(a Assignment, previous []Point) ([]Point, error) {
	if len(previous) != a.K() {
		return nil, invalidArgument("previous centroids", fmt.Sprintf("expected %d, got %d", a.K(), len(previous)))
	}
	return kmeans.Recompute(a, previous), nil
}

// Run partitions points into k clusters starting from the initial centroids.
//
// Each iteration assigns the points, recomputes the centroids and measures
// how far they moved. Run stops when the largest movement is below the
// tolerance (Result.Converged) or after the configured number of iterations.
//
// Run fails with an error matching ErrInvalidArgument when k <= 0,
// len(initial) != k, points is empty or the iteration budget is not positive.
func Run(points []Point, k int, initial []Point, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)
	return run(context.Background(), points, k, initial, o)
}

func run(ctx context.Context, points []Point, k int, initial []Point, o options) (*Result, error) {
	log := o.logger.WithK(k).WithCount(len(points))
	start := time.Now()

	res := &Result{
		points:    points,
		tolerance: o.tolerance,
	}

	out, err := kmeans.Train(points, k, initial, kmeans.Config{
		MaxIterations: o.maxIterations,
		Tolerance:     o.tolerance,
		Observe: func(s model.Snapshot) {
			maxMovement := floats.Max(s.Movement)
			log.LogIteration(ctx, s, maxMovement)
			o.metricsCollector.RecordIteration(s.Iteration, maxMovement)
			if o.trace {
				res.Trace = append(res.Trace, s)
			}
			if o.observer != nil {
				o.observer(s)
			}
		},
	})
	err = translateError(err)

	o.metricsCollector.RecordRun(k, out.Iterations, out.Converged, time.Since(start), err)
	log.LogRun(ctx, out.Iterations, out.Converged, err)

	if err != nil {
		return nil, err
	}

	res.Assignment = out.Assignment
	res.Centroids = slices.Clone(out.Centroids)
	res.Iterations = out.Iterations
	res.Converged = out.Converged

	return res, nil
}
