// Package kmeans implements Lloyd's k-means iteration over points in the plane.
//
// Centroids are seeded by the caller. Each iteration assigns every point to
// its nearest centroid, recomputes each centroid as the mean of its cluster
// and measures how far the centroids moved. Training stops once the largest
// movement drops below the tolerance or the iteration budget is exhausted.
package kmeans
