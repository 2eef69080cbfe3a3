// Package testutil provides testing utilities for lloyd.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source and generators for point sets.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(100, -10, 10)
//	blobs := rng.Blobs([]model.Point{model.Pt(0, 0), model.Pt(10, 10)}, 50, 1.0)
//	seeds := rng.Sample(blobs, 2)
package testutil
