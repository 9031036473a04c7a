package index

import (
	"math"
	"testing"

	"github.com/hupe1980/colorsep/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIndex struct{ n int }

func (s *stubIndex) Name() string { return "stub" }
func (s *stubIndex) Len() int     { return s.n }
func (s *stubIndex) Nearest(vector.Vector3) (Result, bool) {
	return Result{ID: 0}, s.n > 0
}

func TestRegistry(t *testing.T) {
	stubKind := Kind(99)
	called := false
	RegisterBuilder(stubKind, func(points []vector.Vector3) (Index, error) {
		called = true
		return &stubIndex{n: len(points)}, nil
	})

	idx, err := Build(stubKind, []vector.Vector3{vector.Splat(0), vector.Splat(1)})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 2, idx.Len())

	_, err = Build(stubKind, nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Build(Kind(98), []vector.Vector3{vector.Splat(0)})
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"", KindKDTree},
		{"kdtree", KindKDTree},
		{"KD-Tree", KindKDTree},
		{"flat", KindFlat},
		{" FLAT ", KindFlat},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseKind("hnsw")
	assert.ErrorIs(t, err, ErrUnknownKind)

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("flat")))
	assert.Equal(t, KindFlat, k)
	text, err := k.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "flat", string(text))
}

func TestResultBetter(t *testing.T) {
	r := Unmatched()
	assert.True(t, r.Better(5, 1))

	r = Result{ID: 3, Distance: 0.5}
	assert.True(t, r.Better(2, 0.5), "ties go to the lower id")
	assert.False(t, r.Better(4, 0.5))
	assert.False(t, r.Better(0, 0.6))
	assert.False(t, r.Better(0, float32(math.NaN())))
}
