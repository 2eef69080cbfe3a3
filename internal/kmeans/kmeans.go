package kmeans

import (
	"math"
	"slices"

	"github.com/hupe1980/lloyd/distance"
	"github.com/hupe1980/lloyd/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Config controls a training run.
type Config struct {
	MaxIterations int
	Tolerance     float64

	// Observe, if set, is called with the state of every iteration.
	Observe func(model.Snapshot)
}

// Outcome is the final state of a training run.
type Outcome struct {
	Assignment model.Assignment
	Centroids  []model.Point
	Iterations int
	Converged  bool
}

// Train runs Lloyd's algorithm starting from the initial centroids.
// initial is not modified.
func Train(points []model.Point, k int, initial []model.Point, cfg Config) (Outcome, error) {
	if err := Validate(points, k, initial, cfg.MaxIterations); err != nil {
		return Outcome{}, err
	}

	centroids := slices.Clone(initial)

	var out Outcome
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		assignment := Assign(points, centroids)
		next := Recompute(assignment, centroids)
		movement := Movement(centroids, next)

		centroids = next
		out = Outcome{
			Assignment: assignment,
			Centroids:  centroids,
			Iterations: iter,
		}

		if cfg.Observe != nil {
			cfg.Observe(model.Snapshot{
				Iteration:  iter,
				Centroids:  centroids,
				Assignment: assignment,
				Movement:   movement,
			})
		}

		if floats.Max(movement) < cfg.Tolerance {
			out.Converged = true
			break
		}
	}

	return out, nil
}

// Assign partitions points by nearest centroid.
// On exact ties the centroid with the lowest index wins.
func Assign(points []model.Point, centroids []model.Point) model.Assignment {
	assignment := model.NewAssignment(len(centroids))

	for i, p := range points {
		best, _ := Nearest(p, centroids)
		if best < 0 {
			continue
		}
		assignment.Add(best, uint32(i), p)
	}

	return assignment
}

// Nearest returns the index of the centroid closest to p and its distance.
// It returns -1 if centroids is empty. When no distance compares below +Inf
// (non-finite coordinates) the point falls back to centroid 0.
func Nearest(p model.Point, centroids []model.Point) (int, float64) {
	if len(centroids) == 0 {
		return -1, math.Inf(1)
	}

	bestCluster := 0
	minDist := math.Inf(1)

	for j, c := range centroids {
		d := distance.Euclidean(p, c)
		if d < minDist {
			minDist = d
			bestCluster = j
		}
	}

	return bestCluster, minDist
}

// Recompute returns the mean of every cluster. Empty clusters keep
// their previous centroid.
func Recompute(assignment model.Assignment, previous []model.Point) []model.Point {
	next := make([]model.Point, assignment.K())

	var xs, ys []float64
	for i := range next {
		cluster := assignment.Cluster(i)
		if len(cluster) == 0 {
			next[i] = previous[i]
			continue
		}

		xs, ys = xs[:0], ys[:0]
		for _, p := range cluster {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
		next[i] = model.Pt(stat.Mean(xs, nil), stat.Mean(ys, nil))
	}

	return next
}

// Movement returns the distance each centroid moved from prev to next.
func Movement(prev, next []model.Point) []float64 {
	out := make([]float64, len(prev))
	for i := range prev {
		out[i] = distance.Euclidean(prev[i], next[i])
	}
	return out
}

// Inertia returns the sum of squared distances of every point to the
// centroid of its cluster.
func Inertia(assignment model.Assignment, centroids []model.Point) float64 {
	var sum float64
	for i := range assignment.K() {
		for _, p := range assignment.Cluster(i) {
			sum += distance.SquaredEuclidean(p, centroids[i])
		}
	}
	return sum
}
