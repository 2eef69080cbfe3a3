package distance

import (
	"math"

	"github.com/hupe1980/lloyd/model"
)

// Func is a function type for distance calculation.
type Func func(a, b model.Point) float64

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// SquaredEuclidean returns the squared straight-line distance between a and b.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
