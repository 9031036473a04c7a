package distance

import (
	"github.com/chewxy/math32"
	"github.com/hupe1980/colorsep/vector"
)

// Func is a function type for distance calculation.
type Func func(a, b vector.Vector3) float32

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
func SquaredL2(a, b vector.Vector3) float32 {
	d0 := a[0] - b[0]
	d1 := a[1] - b[1]
	d2 := a[2] - b[2]
	return d0*d0 + d1*d1 + d2*d2
}

// L2 calculates the L2 (Euclidean) distance between two vectors.
func L2(a, b vector.Vector3) float32 {
	return math32.Sqrt(SquaredL2(a, b))
}

// AxisSquared returns the squared distance between a and b along a single axis.
// It is the lower bound used to prune k-d tree branches.
func AxisSquared(a, b vector.Vector3, axis int) float32 {
	d := a[axis] - b[axis]
	return d * d
}
