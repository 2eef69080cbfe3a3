// Package lloyd provides deterministic k-means clustering of points in the plane.
//
// Lloyd's algorithm alternates two steps: every point is assigned to its
// nearest centroid, then every centroid is moved to the mean of the points
// assigned to it. The caller seeds the centroids; lloyd never draws them
// at random, so a run is fully reproducible.
//
// # Quick Start
//
//	points := []lloyd.Point{lloyd.Pt(1, 1), lloyd.Pt(2, 1), lloyd.Pt(4, 3), lloyd.Pt(5, 4)}
//	seeds := []lloyd.Point{lloyd.Pt(1.5, 1), lloyd.Pt(4.5, 3.5)}
//
//	res, err := lloyd.Run(points, 2, seeds,
//	    lloyd.WithMaxIterations(100),
//	    lloyd.WithTolerance(0.001),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Converged, res.Centroids, res.Assignment)
//
// # Iteration Trace
//
// WithTrace records one Snapshot per iteration (centroids, assignment and
// centroid movement). WithObserver streams the same snapshots to a callback:
//
//	res, _ := lloyd.Run(points, 2, seeds, lloyd.WithTrace())
//	for _, s := range res.Trace {
//	    fmt.Printf("Iteration %d: %v\n", s.Iteration, s.Assignment)
//	}
//
// # Determinism
//
// Points are scanned in input order and centroids in index order. A point
// equidistant from several centroids goes to the one with the lowest index.
// A cluster that receives no points keeps its previous centroid.
//
// # Batches
//
// A run touches no shared state. RunBatch executes independent jobs in
// parallel and returns their results in job order:
//
//	results, err := lloyd.RunBatch(ctx, jobs, lloyd.WithConcurrency(4))
//
// # Errors
//
// Invalid arguments are rejected before any computation with an
// *ArgumentError that matches ErrInvalidArgument:
//
//	_, err := lloyd.Run(points, 0, nil)
//	errors.Is(err, lloyd.ErrInvalidArgument) // true
package lloyd
