package candidate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolutionIsMinimal(t *testing.T) {
	targets := []int{1, 2, 3, 7, 8, 9, 26, 27, 28, 1000, 10000, 65536, 100_000_000}

	for n := 1; n <= 6; n++ {
		for _, target := range targets {
			r := Resolution(target, n)
			require.GreaterOrEqual(t, r, 1)

			total, err := Combinations(r, n)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, total, target, "n=%d target=%d r=%d", n, target, r)

			if r > 1 {
				below, err := Combinations(r-1, n)
				require.NoError(t, err)
				assert.Less(t, below, target, "n=%d target=%d r=%d not minimal", n, target, r)
			}
		}
	}
}

func TestResolutionExactPowers(t *testing.T) {
	// Exact powers are where floating-point roots tend to land one too high.
	assert.Equal(t, 10, Resolution(1000, 3))
	assert.Equal(t, 100, Resolution(100_000_000, 4))
	assert.Equal(t, 4, Resolution(64, 3))
	assert.Equal(t, 22, Resolution(10000, 3))
	assert.Equal(t, 1, Resolution(1, 5))

	// 2^21 cubed is one past MaxInt.
	assert.Equal(t, 1<<21, Resolution(math.MaxInt, 3))
}

func TestCombinationsOverflow(t *testing.T) {
	_, err := Combinations(2, 64)
	assert.ErrorIs(t, err, ErrTooManyCombinations)

	_, err = Combinations(2, 31)
	assert.ErrorIs(t, err, ErrTooManyCombinations)

	total, err := Combinations(2, 30)
	require.NoError(t, err)
	assert.Equal(t, 1<<30, total)

	total, err = Combinations(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 81, total)
}

func TestDigits(t *testing.T) {
	digits := make([]int, 3)

	Digits(0, 4, digits)
	assert.Equal(t, []int{0, 0, 0}, digits)

	// 1 + 2*4 + 3*16
	Digits(57, 4, digits)
	assert.Equal(t, []int{1, 2, 3}, digits)

	Digits(63, 4, digits)
	assert.Equal(t, []int{3, 3, 3}, digits)
}

func TestFraction(t *testing.T) {
	assert.Equal(t, float32(0), Fraction(0, 5))
	assert.Equal(t, float32(0.25), Fraction(1, 5))
	assert.Equal(t, float32(1), Fraction(4, 5))
	assert.Equal(t, float32(1), Fraction(0, 1), "single level is full coverage")
}

func TestAdmitShortCircuits(t *testing.T) {
	dst := []float32{-1, -1, -1}

	ok := Admit([]int{1, 1, 1}, 3, 1.0, dst)
	assert.False(t, ok)
	// 0.5 + 0.5 fits, the third 0.5 does not; it must never be written.
	assert.Equal(t, []float32{0.5, 0.5, -1}, dst)

	dst = []float32{-1, -1, -1}
	ok = Admit([]int{2, 0, 0}, 3, 1.0, dst)
	assert.True(t, ok)
	assert.Equal(t, []float32{1, 0, 0}, dst)

	dst = []float32{-1, -1}
	ok = Admit([]int{2, 2}, 3, 0, dst)
	assert.False(t, ok)
	assert.Equal(t, []float32{-1, -1}, dst, "first digit already exceeds the limit")
}
