// Package grid generates the sample points of a 3D LUT lattice and partitions
// them across workers.
package grid

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colorsep/vector"
)

// ErrInvalidSize is returned for a lattice size below 1.
var ErrInvalidSize = errors.New("grid: size must be at least 1")

// Value returns the normalised coordinate of lattice index i. A size of 1
// maps every index to 0.
func Value(i, size int) float32 {
	if size <= 1 {
		return 0
	}
	return float32(i) / float32(size-1)
}

// Len returns the number of points in a size^3 lattice.
func Len(size int) int {
	return size * size * size
}

// Generate returns the size^3 lattice in canonical LUT order: blue is the
// outermost axis and red varies fastest.
func Generate(size int) ([]vector.Vector3, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	values := make([]float32, size)
	for i := range values {
		values[i] = Value(i, size)
	}

	pts := make([]vector.Vector3, 0, Len(size))
	for _, b := range values {
		for _, g := range values {
			for _, r := range values {
				pts = append(pts, vector.New(r, g, b))
			}
		}
	}
	return pts, nil
}

// Coordinates returns the lattice indices of the point at position pos.
func Coordinates(pos, size int) (r, g, b int) {
	return pos % size, (pos / size) % size, pos / (size * size)
}

// Slice returns the half-open range [lo, hi) of n items assigned to worker i
// of w. Ranges of consecutive workers are contiguous and cover [0, n) exactly.
func Slice(n, w, i int) (lo, hi int) {
	return i * n / w, (i + 1) * n / w
}
