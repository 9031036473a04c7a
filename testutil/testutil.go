package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/colorsep/distance"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
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
	r.rand.Seed(r.seed)
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

// Float32 returns, as a float32, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float32() float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float32()
}

// Point returns a single colour uniform in [0, 1)^3.
func (r *RNG) Point() vector.Vector3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return vector.New(r.rand.Float32(), r.rand.Float32(), r.rand.Float32())
}

// UniformPoints generates colours uniform in [0, 1)^3.
func (r *RNG) UniformPoints(num int) []vector.Vector3 {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]vector.Vector3, num)
	for i := range pts {
		for j := range vector.Dimensions {
			pts[i][j] = r.rand.Float32()
		}
	}
	return pts
}

// UniformRangePoints generates colours with components in [minVal, maxVal).
func (r *RNG) UniformRangePoints(num int, minVal, maxVal float32) []vector.Vector3 {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	pts := make([]vector.Vector3, num)
	for i := range pts {
		for j := range vector.Dimensions {
			pts[i][j] = minVal + r.rand.Float32()*span
		}
	}
	return pts
}

// ClusteredPoints generates colours scattered with Gaussian noise around
// random centroids. Real candidate sets are strongly clustered near the white
// point, so this exercises unbalanced splits better than uniform data.
func (r *RNG) ClusteredPoints(num, clusters int, spread float32) []vector.Vector3 {
	centroids := r.UniformPoints(clusters)

	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]vector.Vector3, num)
	for i := range pts {
		c := centroids[i%clusters]
		for j := range vector.Dimensions {
			pts[i][j] = c[j] + float32(r.rand.NormFloat64())*spread
		}
	}
	return pts
}

// Duplicates returns num copies of p, for tie-breaking tests.
func Duplicates(p vector.Vector3, num int) []vector.Vector3 {
	pts := make([]vector.Vector3, num)
	for i := range pts {
		pts[i] = p
	}
	return pts
}

// LatticePoints returns the size^3 lattice over [0, 1]^3 in red-fastest order.
// Lattices have many equidistant neighbours, which stresses tie-breaking.
func LatticePoints(size int) []vector.Vector3 {
	if size < 1 {
		return nil
	}
	step := float32(0)
	if size > 1 {
		step = 1 / float32(size-1)
	}

	pts := make([]vector.Vector3, 0, size*size*size)
	for b := range size {
		for g := range size {
			for r := range size {
				pts = append(pts, vector.New(float32(r)*step, float32(g)*step, float32(b)*step))
			}
		}
	}
	return pts
}

// BruteForceNearest returns the exact nearest point to query, breaking ties
// towards the lower id. It is the ground truth for index tests.
func BruteForceNearest(points []vector.Vector3, query vector.Vector3) index.Result {
	best := index.Unmatched()
	for i, p := range points {
		if d := distance.SquaredL2(query, p); best.Better(uint32(i), d) {
			best = index.Result{ID: uint32(i), Distance: d}
		}
	}
	if best.ID == index.NoID && len(points) > 0 {
		return index.Fallback()
	}
	return best
}

// MatchRate returns the fraction of results whose ids agree with truth.
func MatchRate(truth, got []index.Result) float64 {
	if len(truth) == 0 || len(got) == 0 {
		if len(truth) == 0 && len(got) == 0 {
			return 1.0
		}
		return 0.0
	}

	n := min(len(truth), len(got))
	hits := 0
	for i := range n {
		if truth[i].ID == got[i].ID {
			hits++
		}
	}
	return float64(hits) / float64(n)
}
