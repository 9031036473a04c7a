package colorsep

import (
	"context"
	"errors"
	"math"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hupe1980/colorsep/candidate"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identity treats device RGB as the comparison space.
type identity struct{}

func (identity) Name() string { return "identity" }

func (identity) ToComparison(dst, src []vector.Vector3) { copy(dst, src) }

func (identity) FromComparison(dst, src []vector.Vector3) { copy(dst, src) }

func srgb(t *testing.T) colorspace.Transform {
	t.Helper()
	p, err := colorspace.Lookup("sRGB")
	require.NoError(t, err)
	return p
}

func rgb255(r, g, b float32) vector.Vector3 {
	return vector.New(r, g, b).Div(255)
}

func TestSetupValidate(t *testing.T) {
	valid := Setup{
		Primaries: []vector.Vector3{rgb255(1, 2, 3)},
		Size:      2,
		Target:    1,
		InkLimit:  candidate.NoInkLimit,
		Transform: identity{},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name  string
		edit  func(*Setup)
		field string
	}{
		{"no primaries", func(s *Setup) { s.Primaries = nil }, "primaries"},
		{"size 1", func(s *Setup) { s.Size = 1 }, "size"},
		{"target 0", func(s *Setup) { s.Target = 0 }, "target"},
		{"negative limit", func(s *Setup) { s.InkLimit = -0.5 }, "ink limit"},
		{"nan limit", func(s *Setup) { s.InkLimit = float32(math.NaN()) }, "ink limit"},
		{"no transform", func(s *Setup) { s.Transform = nil }, "profile"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.edit(&s)

			_, err := Separate(context.Background(), s)
			require.ErrorIs(t, err, ErrInvalidConfig)

			var ce *ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestDefaultSetup(t *testing.T) {
	s := DefaultSetup(identity{}, rgb255(102, 51, 153))
	assert.Equal(t, DefaultSize, s.Size)
	assert.Equal(t, DefaultTarget, s.Target)
	assert.True(t, math.IsInf(float64(s.InkLimit), 1))
	assert.NoError(t, s.Validate())
}

func TestSeparate_SinglePrimaryFullBlend(t *testing.T) {
	primary := rgb255(102, 51, 153)
	res, err := Separate(context.Background(), Setup{
		Primaries: []vector.Vector3{primary},
		Size:      2,
		Target:    1,
		InkLimit:  candidate.NoInkLimit,
		Transform: srgb(t),
	})
	require.NoError(t, err)

	require.Len(t, res.Secondary, 8)
	require.Len(t, res.Channels, 1)
	assert.Equal(t, 1, res.Stats.Candidates)
	assert.Equal(t, 1, res.Stats.Distinct)

	for i := range 8 {
		assert.True(t, vector.Approx(primary, res.Secondary[i], 1e-3), "cell %d: %v", i, res.Secondary[i])
		assert.True(t, vector.Approx(primary, res.Channels[0].Blend[i], 1e-3), "cell %d: %v", i, res.Channels[0].Blend[i])
		assert.Equal(t, vector.Splat(1), res.Channels[0].Mask[i])
	}
}

func TestSeparate_InkLimitHolds(t *testing.T) {
	res, err := Separate(context.Background(), Setup{
		Primaries: []vector.Vector3{rgb255(0, 174, 239), rgb255(236, 0, 140), rgb255(255, 242, 0)},
		Size:      4,
		Target:    1000,
		InkLimit:  1,
		Transform: srgb(t),
	})
	require.NoError(t, err)
	require.Len(t, res.Secondary, 64)
	assert.Positive(t, res.Stats.Pruned)

	for cell := range res.Secondary {
		var total float32
		for _, ch := range res.Channels {
			m := ch.Mask[cell]
			assert.Equal(t, m[0], m[1])
			assert.Equal(t, m[0], m[2])
			total += m[0]
		}
		assert.LessOrEqual(t, total, float32(1), "cell %d", cell)
	}
}

func TestSeparate_ZeroInkLimitMapsToWhite(t *testing.T) {
	res, err := Separate(context.Background(), Setup{
		Primaries: []vector.Vector3{rgb255(255, 0, 0), rgb255(0, 0, 255)},
		Size:      3,
		Target:    16,
		InkLimit:  0,
		Transform: identity{},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Candidates)
	for i := range res.Secondary {
		assert.Equal(t, vector.Splat(1), res.Secondary[i])
		assert.Equal(t, vector.Splat(0), res.Channels[1].Mask[i])
	}
}

func TestSeparate_IndependentOfWorkersAndIndex(t *testing.T) {
	setup := Setup{
		Primaries: []vector.Vector3{rgb255(0, 174, 239), rgb255(236, 0, 140), rgb255(255, 242, 0)},
		Size:      6,
		Target:    512,
		InkLimit:  2.5,
		Transform: srgb(t),
	}
	ctx := context.Background()

	ref, err := Separate(ctx, setup, WithWorkers(1))
	require.NoError(t, err)

	variants := []struct {
		name string
		opts []Option
	}{
		{"workers=2", []Option{WithWorkers(2)}},
		{"workers=gomaxprocs", []Option{WithWorkers(runtime.GOMAXPROCS(0))}},
		{"workers=cells+1", []Option{WithWorkers(6*6*6 + 1)}},
		{"flat", []Option{WithIndexKind(index.KindFlat), WithWorkers(3)}},
	}
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			got, err := Separate(ctx, setup, v.opts...)
			require.NoError(t, err)
			if diff := cmp.Diff(ref.Secondary, got.Secondary); diff != "" {
				t.Fatalf("secondary mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(ref.Channels, got.Channels); diff != "" {
				t.Fatalf("channels mismatch (-want +got):\n%s", diff)
			}
			assert.True(t, ref.Used.Equals(got.Used))
		})
	}
}

func TestSeparate_Idempotent(t *testing.T) {
	setup := Setup{
		Primaries: []vector.Vector3{rgb255(35, 31, 32), rgb255(255, 242, 0)},
		Size:      5,
		Target:    100,
		InkLimit:  candidate.NoInkLimit,
		Transform: srgb(t),
	}
	sep := New()
	a, err := sep.Separate(context.Background(), setup)
	require.NoError(t, err)
	b, err := sep.Separate(context.Background(), setup)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(a.Secondary, b.Secondary))
	assert.Empty(t, cmp.Diff(a.Channels, b.Channels))
}

func TestSeparate_IndexKinds(t *testing.T) {
	for _, kind := range []index.Kind{index.KindKDTree, index.KindFlat} {
		t.Run(kind.String(), func(t *testing.T) {
			res, err := Separate(context.Background(), Setup{
				Primaries: []vector.Vector3{rgb255(102, 51, 153)},
				Size:      2,
				Target:    4,
				InkLimit:  candidate.NoInkLimit,
				Transform: srgb(t),
			}, WithIndexKind(kind))
			require.NoError(t, err)
			assert.Equal(t, kind.String(), res.Stats.Index)
			assert.Len(t, res.Secondary, 8)
		})
	}
}

func TestSeparate_TooManyCombinations(t *testing.T) {
	_, err := Separate(context.Background(), Setup{
		Primaries: []vector.Vector3{rgb255(255, 0, 0), rgb255(0, 255, 0), rgb255(0, 0, 255)},
		Size:      2,
		Target:    1e17,
		InkLimit:  0,
		Transform: identity{},
	})
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, candidate.ErrTooManyCombinations)
}

func TestSeparate_MemoryLimit(t *testing.T) {
	setup := Setup{
		Primaries: []vector.Vector3{rgb255(1, 2, 3)},
		Size:      2,
		Target:    1000,
		InkLimit:  candidate.NoInkLimit,
		Transform: identity{},
	}

	_, err := Separate(context.Background(), setup, WithMemoryLimit(64))
	require.ErrorIs(t, err, ErrInvalidConfig)
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "memory limit", ce.Field)

	_, err = Separate(context.Background(), setup, WithMemoryLimit(1<<30))
	require.NoError(t, err)
}

func TestSeparate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Separate(ctx, Setup{
		Primaries: []vector.Vector3{rgb255(1, 2, 3)},
		Size:      2,
		Target:    1,
		InkLimit:  candidate.NoInkLimit,
		Transform: identity{},
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSeparate_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	_, err := Separate(context.Background(), Setup{
		Primaries: []vector.Vector3{rgb255(1, 2, 3), rgb255(4, 5, 6)},
		Size:      3,
		Target:    9,
		InkLimit:  candidate.NoInkLimit,
		Transform: identity{},
	}, WithMetricsCollector(metrics), WithLogger(nil))
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.Runs)
	assert.Equal(t, int64(9), stats.Combinations)
	assert.Equal(t, int64(9), stats.Candidates)
	assert.Equal(t, int64(1), stats.IndexBuilds)
	assert.Equal(t, int64(27), stats.CellsMapped)
}

func TestTranslateError(t *testing.T) {
	assert.Nil(t, translateError(nil))

	err := translateError(candidate.ErrTooManyCombinations)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, candidate.ErrTooManyCombinations)

	other := errors.New("other")
	assert.Same(t, other, translateError(other))
}

func TestTransformError(t *testing.T) {
	err := NewTransformError("cmyk.icc", colorspace.ErrNotRGB)
	assert.ErrorIs(t, err, colorspace.ErrNotRGB)
	assert.Contains(t, err.Error(), "cmyk.icc")
}
