package model

import (
	"strconv"
	"strings"
)

// Point is a location in the plane.
type Point struct {
	X float64
	Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// String returns the point formatted as "(x, y)".
func (p Point) String() string {
	var sb strings.Builder
	sb.Grow(16)
	sb.WriteByte('(')
	sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	sb.WriteByte(')')
	return sb.String()
}

// FormatPoints formats points as "[(x1, y1), (x2, y2)]".
func FormatPoints(points []Point) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range points {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Snapshot is the observable state after one iteration.
type Snapshot struct {
	// Iteration is 1-based.
	Iteration int
	// Centroids are the recomputed centroids produced by this iteration.
	Centroids []Point
	// Assignment is the partition computed against the previous centroids.
	Assignment Assignment
	// Movement[i] is the distance centroid i moved during this iteration.
	Movement []float64
}
