package kdtree

import (
	"cmp"

	"github.com/hupe1980/colorsep/distance"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
)

// Compile-time check to ensure Tree satisfies the index interface.
var _ index.Index = (*Tree)(nil)

func init() {
	index.RegisterBuilder(index.KindKDTree, func(points []vector.Vector3) (index.Index, error) {
		return New(points)
	})
}

// Options contains configuration options for the tree.
type Options struct {
	// LeafSize is the largest range scanned linearly instead of split further.
	// Values below 1 are treated as 1.
	LeafSize int
}

// DefaultOptions contains the default configuration options for the tree.
var DefaultOptions = Options{
	LeafSize: 8,
}

// Tree is an immutable k-d tree.
type Tree struct {
	points   []vector.Vector3 // Points in tree order
	ids      []uint32         // Original position of each point
	axes     []uint8          // Split axis of the node stored at each position
	leafSize int
}

// New bulk-loads a tree over points. The ID of each point is its position in
// points; the slice itself is copied and not retained.
func New(points []vector.Vector3, optFns ...func(o *Options)) (*Tree, error) {
	if len(points) == 0 {
		return nil, index.ErrEmpty
	}

	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	t := &Tree{
		points:   make([]vector.Vector3, len(points)),
		ids:      make([]uint32, len(points)),
		axes:     make([]uint8, len(points)),
		leafSize: max(opts.LeafSize, 1),
	}
	copy(t.points, points)
	for i := range t.ids {
		t.ids[i] = uint32(i)
	}

	t.build(0, len(points))

	return t, nil
}

func (*Tree) Name() string { return "kdtree" }

// Len returns the number of points in the tree.
func (t *Tree) Len() int { return len(t.points) }

// Nearest returns the point closest to q.
func (t *Tree) Nearest(q vector.Vector3) (index.Result, bool) {
	if len(t.points) == 0 {
		return index.Result{}, false
	}

	best := index.Unmatched()
	t.search(q, 0, len(t.points), &best)
	if best.ID == index.NoID {
		return index.Fallback(), true
	}
	return best, true
}

func (t *Tree) search(q vector.Vector3, lo, hi int, best *index.Result) {
	for hi-lo > t.leafSize {
		mid := int(uint(lo+hi) >> 1)
		p := t.points[mid]

		if d := distance.SquaredL2(q, p); best.Better(t.ids[mid], d) {
			*best = index.Result{ID: t.ids[mid], Distance: d}
		}

		axis := t.axes[mid]
		diff := q[axis] - p[axis]

		nearLo, nearHi, farLo, farHi := lo, mid, mid+1, hi
		if diff >= 0 {
			nearLo, nearHi, farLo, farHi = mid+1, hi, lo, mid
		}

		t.search(q, nearLo, nearHi, best)

		// Equal bounds may still hide an equidistant point with a lower id.
		if diff*diff > best.Distance {
			return
		}
		lo, hi = farLo, farHi
	}

	for i := lo; i < hi; i++ {
		if d := distance.SquaredL2(q, t.points[i]); best.Better(t.ids[i], d) {
			*best = index.Result{ID: t.ids[i], Distance: d}
		}
	}
}

func (t *Tree) build(lo, hi int) {
	for hi-lo > t.leafSize {
		mid := int(uint(lo+hi) >> 1)
		axis := t.widestAxis(lo, hi)

		t.selectNth(lo, hi, mid, axis)
		t.axes[mid] = uint8(axis)

		t.build(lo, mid)
		lo = mid + 1
	}
}

// widestAxis returns the axis with the largest coordinate spread in [lo, hi).
func (t *Tree) widestAxis(lo, hi int) int {
	minV, maxV := t.points[lo], t.points[lo]
	for _, p := range t.points[lo+1 : hi] {
		for a := range vector.Dimensions {
			minV[a] = min(minV[a], p[a])
			maxV[a] = max(maxV[a], p[a])
		}
	}

	axis := 0
	spread := maxV[0] - minV[0]
	for a := 1; a < vector.Dimensions; a++ {
		if s := maxV[a] - minV[a]; s > spread {
			axis, spread = a, s
		}
	}
	return axis
}

// less orders points by coordinate on axis, then by id. The order is total,
// which makes the build deterministic for a fixed input.
func (t *Tree) less(i, j, axis int) bool {
	if c := cmp.Compare(t.points[i][axis], t.points[j][axis]); c != 0 {
		return c < 0
	}
	return t.ids[i] < t.ids[j]
}

func (t *Tree) swap(i, j int) {
	t.points[i], t.points[j] = t.points[j], t.points[i]
	t.ids[i], t.ids[j] = t.ids[j], t.ids[i]
}

// selectNth partially sorts [lo, hi) so that position k holds the element it
// would hold if the range were sorted, with smaller elements before it and
// larger ones after.
func (t *Tree) selectNth(lo, hi, k, axis int) {
	for hi-lo > 1 {
		mid := int(uint(lo+hi) >> 1)
		last := hi - 1

		// Median of three, then park the pivot at the end.
		if t.less(mid, lo, axis) {
			t.swap(mid, lo)
		}
		if t.less(last, lo, axis) {
			t.swap(last, lo)
		}
		if t.less(last, mid, axis) {
			t.swap(last, mid)
		}
		t.swap(mid, last)

		store := lo
		for i := lo; i < last; i++ {
			if t.less(i, last, axis) {
				t.swap(i, store)
				store++
			}
		}
		t.swap(store, last)

		switch {
		case k == store:
			return
		case k < store:
			hi = store
		default:
			lo = store + 1
		}
	}
}
