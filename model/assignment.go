package model

import (
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Assignment partitions a point set into a fixed number of clusters.
//
// Cluster i holds its points in the order they were scanned, together with a
// bitmap of their positions in the input slice. The zero value has no
// clusters; use NewAssignment.
type Assignment struct {
	clusters [][]Point
	members  []*roaring.Bitmap
}

// NewAssignment creates an assignment with k empty clusters.
func NewAssignment(k int) Assignment {
	a := Assignment{
		clusters: make([][]Point, k),
		members:  make([]*roaring.Bitmap, k),
	}
	for i := range a.members {
		a.members[i] = roaring.New()
	}
	return a
}

// Add appends p, found at position index of the input, to cluster.
func (a *Assignment) Add(cluster int, index uint32, p Point) {
	a.clusters[cluster] = append(a.clusters[cluster], p)
	a.members[cluster].Add(index)
}

// K returns the number of clusters.
func (a Assignment) K() int {
	return len(a.clusters)
}

// Len returns the number of points assigned to cluster i.
func (a Assignment) Len(i int) int {
	return len(a.clusters[i])
}

// Total returns the number of assigned points across all clusters.
func (a Assignment) Total() int {
	n := 0
	for _, c := range a.clusters {
		n += len(c)
	}
	return n
}

// Cluster returns the points of cluster i in scan order.
// The returned slice must not be modified.
func (a Assignment) Cluster(i int) []Point {
	return a.clusters[i]
}

// Members returns a copy of the input positions assigned to cluster i.
func (a Assignment) Members(i int) *roaring.Bitmap {
	return a.members[i].Clone()
}

// ClusterOf returns the cluster holding the input position index,
// or -1 if no cluster holds it.
func (a Assignment) ClusterOf(index uint32) int {
	for i, m := range a.members {
		if m.Contains(index) {
			return i
		}
	}
	return -1
}

// Empty returns the indexes of clusters that received no points.
func (a Assignment) Empty() []int {
	var out []int
	for i, c := range a.clusters {
		if len(c) == 0 {
			out = append(out, i)
		}
	}
	return out
}

// String formats the assignment as "{0: [(x, y), ...], 1: [...]}".
func (a Assignment) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, c := range a.clusters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(": ")
		sb.WriteString(FormatPoints(c))
	}
	sb.WriteByte('}')
	return sb.String()
}
