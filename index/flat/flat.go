// Package flat implements exhaustive nearest-neighbour search.
//
// Flat is the reference index: it compares the query with every point. It is
// useful for small candidate sets and as ground truth for the k-d tree.
package flat

import (
	"github.com/hupe1980/colorsep/distance"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
)

// Compile-time check to ensure Flat satisfies the index interface.
var _ index.Index = (*Flat)(nil)

func init() {
	index.RegisterBuilder(index.KindFlat, func(points []vector.Vector3) (index.Index, error) {
		return New(points)
	})
}

// Flat is an exhaustive-scan index.
type Flat struct {
	points []vector.Vector3
}

// New creates a flat index over points. The slice is retained and must not be
// modified while the index is in use.
func New(points []vector.Vector3) (*Flat, error) {
	if len(points) == 0 {
		return nil, index.ErrEmpty
	}
	return &Flat{points: points}, nil
}

func (*Flat) Name() string { return "flat" }

// Len returns the number of indexed points.
func (f *Flat) Len() int { return len(f.points) }

// Nearest returns the point closest to q. Points are visited in id order and
// only a strictly smaller distance replaces the current best, so the lowest id
// wins ties.
func (f *Flat) Nearest(q vector.Vector3) (index.Result, bool) {
	if len(f.points) == 0 {
		return index.Result{}, false
	}

	best := index.Unmatched()
	for i, p := range f.points {
		if d := distance.SquaredL2(q, p); d < best.Distance {
			best = index.Result{ID: uint32(i), Distance: d}
		}
	}

	if best.ID == index.NoID {
		return index.Fallback(), true
	}
	return best, true
}
