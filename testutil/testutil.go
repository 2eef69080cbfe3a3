package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/lloyd/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints returns n points with both coordinates in [minVal, maxVal).
func (r *RNG) UniformPoints(n int, minVal, maxVal float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	pts := make([]model.Point, n)
	for i := range pts {
		pts[i] = model.Pt(minVal+r.rand.Float64()*span, minVal+r.rand.Float64()*span)
	}
	return pts
}

// Blobs returns perCenter points normally distributed around each center
// with the given standard deviation. Points are grouped by center, in
// center order.
func (r *RNG) Blobs(centers []model.Point, perCenter int, spread float64) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, 0, len(centers)*perCenter)
	for _, c := range centers {
		for range perCenter {
			pts = append(pts, model.Pt(
				c.X+r.rand.NormFloat64()*spread,
				c.Y+r.rand.NormFloat64()*spread,
			))
		}
	}
	return pts
}

// Sample returns k points drawn from pts without replacement.
func (r *RNG) Sample(pts []model.Point, k int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	if k > len(pts) {
		k = len(pts)
	}
	perm := r.rand.Perm(len(pts))
	out := make([]model.Point, k)
	for i := range out {
		out[i] = pts[perm[i]]
	}
	return out
}
