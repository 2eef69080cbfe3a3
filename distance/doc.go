// Package distance provides distance functions between points in the plane.
package distance
