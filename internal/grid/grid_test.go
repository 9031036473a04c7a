package grid

import (
	"testing"

	"github.com/hupe1980/colorsep/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	pts, err := Generate(2)
	require.NoError(t, err)

	want := []vector.Vector3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
	}
	assert.Equal(t, want, pts)
}

func TestGenerateOrder(t *testing.T) {
	const size = 5
	pts, err := Generate(size)
	require.NoError(t, err)
	require.Len(t, pts, Len(size))

	for pos, p := range pts {
		r, g, b := Coordinates(pos, size)
		assert.Equal(t, vector.New(Value(r, size), Value(g, size), Value(b, size)), p)
	}
	assert.Equal(t, vector.New(0.25, 0, 0), pts[1])
	assert.Equal(t, vector.New(0, 0.25, 0), pts[size])
	assert.Equal(t, vector.New(0, 0, 0.25), pts[size*size])
}

func TestGenerateSizeOne(t *testing.T) {
	pts, err := Generate(1)
	require.NoError(t, err)
	assert.Equal(t, []vector.Vector3{vector.Splat(0)}, pts)
}

func TestGenerateInvalid(t *testing.T) {
	_, err := Generate(0)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestSlice(t *testing.T) {
	for _, n := range []int{0, 1, 7, 64, 1000} {
		for _, w := range []int{1, 2, 3, 8, 13} {
			next := 0
			for i := range w {
				lo, hi := Slice(n, w, i)
				assert.Equal(t, next, lo, "n=%d w=%d i=%d", n, w, i)
				assert.LessOrEqual(t, lo, hi)
				assert.LessOrEqual(t, hi-lo, n/w+1)
				next = hi
			}
			assert.Equal(t, n, next, "n=%d w=%d", n, w)
		}
	}
}
