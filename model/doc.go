// Package model defines core types used throughout lloyd.
//
// # Geometry
//
//   - Point: an immutable (X, Y) pair of float64 coordinates
//
// # Clustering State
//
//   - Assignment: a fixed-size partition of the input points into k clusters,
//     indexed 0..k-1, keeping scan order and the input index of every member
//   - Snapshot: the centroids, assignment and centroid movement observed after
//     one iteration
//
// Assignments are built once per iteration and never mutated afterwards:
//
//	a := model.NewAssignment(2)
//	a.Add(0, 0, model.Pt(1, 1))
//	a.Add(1, 1, model.Pt(4, 3))
//	fmt.Println(a) // {0: [(1, 1)], 1: [(4, 3)]}
package model
