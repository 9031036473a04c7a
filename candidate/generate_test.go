package candidate

import (
	"testing"

	"github.com/hupe1980/colorsep/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testWhite     = vector.New(0.9505, 1, 1.089)
	testPrimaries = []vector.Vector3{
		vector.New(0.15, 0.22, 0.55),
		vector.New(0.41, 0.21, 0.20),
		vector.New(0.77, 0.93, 0.14),
	}
)

func TestGenerateValidation(t *testing.T) {
	_, err := Generate(nil, testWhite, DefaultParams(10))
	assert.ErrorIs(t, err, ErrNoPrimaries)

	_, err = Generate(testPrimaries, testWhite, DefaultParams(0))
	assert.ErrorIs(t, err, ErrInvalidTarget)

	_, err = Generate(testPrimaries, testWhite, Params{Target: 10, InkLimit: -0.5})
	assert.ErrorIs(t, err, ErrInvalidInkLimit)
}

func TestGenerateUnlimited(t *testing.T) {
	set, err := Generate(testPrimaries, testWhite, DefaultParams(1000))
	require.NoError(t, err)

	assert.Equal(t, 10, set.Stats.Resolution)
	assert.Equal(t, 1000, set.Stats.Combinations)
	assert.Equal(t, 1000, set.Len())
	assert.Zero(t, set.Stats.Pruned)
	assert.Len(t, set.Fractions, 1000*len(testPrimaries))

	// Index 0 is all-zero fractions: pure white.
	first := set.At(0)
	assert.Equal(t, []float32{0, 0, 0}, first.Fractions)
	assert.True(t, vector.Approx(testWhite, first.Color, 1e-6))

	// Primary 0 varies fastest.
	assert.Equal(t, []float32{Fraction(1, 10), 0, 0}, set.At(1).Fractions)
	assert.Equal(t, []float32{0, Fraction(1, 10), 0}, set.At(10).Fractions)
}

func TestGenerateSinglePrimaryFullCoverage(t *testing.T) {
	primary := vector.New(0.3, 0.2, 0.5)
	set, err := Generate([]vector.Vector3{primary}, testWhite, DefaultParams(1))
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	c := set.At(0)
	assert.Equal(t, []float32{1}, c.Fractions)
	assert.True(t, vector.Approx(primary, c.Color, 1e-6), "full coverage reproduces the primary: %v", c.Color)
}

func TestGenerateInkLimitInvariant(t *testing.T) {
	limits := []float32{0, 0.5, 1, 1.5, 2, 3}

	for _, limit := range limits {
		set, err := Generate(testPrimaries, testWhite, Params{Target: 1000, InkLimit: limit})
		require.NoError(t, err)

		for i := range set.Len() {
			assert.LessOrEqual(t, set.At(i).Ink(), limit, "candidate %d violates limit %v", i, limit)
		}
		assert.Equal(t, set.Stats.Combinations, set.Stats.Generated+set.Stats.Pruned)
	}
}

func TestGenerateZeroInkLimit(t *testing.T) {
	set, err := Generate(testPrimaries, testWhite, Params{Target: 1000, InkLimit: 0})
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, []float32{0, 0, 0}, set.At(0).Fractions)
	assert.Equal(t, testWhite, set.At(0).Color)

	single, err := Generate(testPrimaries[:1], testWhite, Params{Target: 2, InkLimit: 0})
	require.NoError(t, err)
	require.Equal(t, 1, single.Len())
	assert.Equal(t, []float32{0}, single.At(0).Fractions)
}

func TestGenerateLimitPrunesEverything(t *testing.T) {
	// A single level means full coverage for every primary.
	set, err := Generate(testPrimaries, testWhite, Params{Target: 1, InkLimit: 0.5})
	require.NoError(t, err)
	assert.Zero(t, set.Len())
	assert.Equal(t, 1, set.Stats.Pruned)
}

func TestGenerateIdempotent(t *testing.T) {
	params := Params{Target: 4096, InkLimit: 1.5}

	a, err := Generate(testPrimaries, testWhite, params)
	require.NoError(t, err)
	b, err := Generate(testPrimaries, testWhite, params)
	require.NoError(t, err)

	assert.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Colors, b.Colors)
	assert.Equal(t, a.Fractions, b.Fractions)
}

func TestGenerateTooManyCombinations(t *testing.T) {
	_, err := Generate(testPrimaries, testWhite, Params{Target: 1e17, InkLimit: 0})
	assert.ErrorIs(t, err, ErrTooManyCombinations)
}

func TestGenerateLargeSparse(t *testing.T) {
	// Far more combinations than the initial capacity, almost all pruned.
	set, err := Generate(testPrimaries, testWhite, Params{Target: 8_000_000, InkLimit: 0})
	require.NoError(t, err)
	assert.Equal(t, 200, set.Stats.Resolution)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, set.Stats.Combinations-1, set.Stats.Pruned)
}

func TestMixWhiteIsIdentity(t *testing.T) {
	running := vector.New(0.4, 0.5, 0.6)
	assert.Equal(t, running, Mix(running, testPrimaries[0], testWhite, 0))
	assert.True(t, vector.Approx(testWhite, Tint(testPrimaries[1], testWhite, 0), 0))
	assert.True(t, vector.Approx(testPrimaries[1], Tint(testPrimaries[1], testWhite, 1), 1e-7))
}

func TestEstimateBytes(t *testing.T) {
	assert.Equal(t, int64(1000*(12+3*4)), EstimateBytes(1000, 3))
}

func BenchmarkGenerate(b *testing.B) {
	params := DefaultParams(100_000)
	for b.Loop() {
		if _, err := Generate(testPrimaries, testWhite, params); err != nil {
			b.Fatal(err)
		}
	}
}
