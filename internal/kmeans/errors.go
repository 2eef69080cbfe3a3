package kmeans

import (
	"fmt"
	"math"

	"github.com/hupe1980/lloyd/model"
)

// ArgumentError reports an argument rejected before training starts.
type ArgumentError struct {
	Argument string
	Reason   string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("kmeans: invalid %s: %s", e.Argument, e.Reason)
}

// Validate checks the arguments of Train.
func Validate(points []model.Point, k int, initial []model.Point, maxIter int) error {
	if k <= 0 {
		return &ArgumentError{Argument: "k", Reason: fmt.Sprintf("must be positive, got %d", k)}
	}
	if len(initial) != k {
		return &ArgumentError{
			Argument: "initial centroids",
			Reason:   fmt.Sprintf("expected %d, got %d", k, len(initial)),
		}
	}
	if len(points) == 0 {
		return &ArgumentError{Argument: "points", Reason: "must not be empty"}
	}
	if maxIter <= 0 {
		return &ArgumentError{Argument: "max iterations", Reason: fmt.Sprintf("must be positive, got %d", maxIter)}
	}
	if i := firstNonFinite(points); i >= 0 {
		return &ArgumentError{Argument: "points", Reason: fmt.Sprintf("point %d %v is not finite", i, points[i])}
	}
	if i := firstNonFinite(initial); i >= 0 {
		return &ArgumentError{Argument: "initial centroids", Reason: fmt.Sprintf("centroid %d %v is not finite", i, initial[i])}
	}
	return nil
}

func firstNonFinite(pts []model.Point) int {
	for i, p := range pts {
		if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			return i
		}
	}
	return -1
}
