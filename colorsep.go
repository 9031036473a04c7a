package colorsep

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/chewxy/math32"
	"github.com/hupe1980/colorsep/candidate"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/hupe1980/colorsep/index"
	_ "github.com/hupe1980/colorsep/index/flat"   // registers index.KindFlat
	_ "github.com/hupe1980/colorsep/index/kdtree" // registers index.KindKDTree
	"github.com/hupe1980/colorsep/internal/grid"
	"github.com/hupe1980/colorsep/internal/mapper"
	"github.com/hupe1980/colorsep/vector"
)

const (
	// DefaultSize is the default LUT edge length.
	DefaultSize = 64

	// MinSize is the smallest LUT edge length that spans the domain.
	MinSize = 2

	// DefaultTarget is the default number of combinations to enumerate.
	DefaultTarget = 100_000_000
)

// Setup describes one separation.
type Setup struct {
	// Primaries are the ink colours in device RGB, unit range.
	Primaries []vector.Vector3

	// Size is the LUT edge length; the grid has Size^3 cells.
	Size int

	// Target is the minimum number of blend combinations to enumerate.
	Target int

	// InkLimit caps the sum of blend fractions. Use candidate.NoInkLimit
	// for no limit.
	InkLimit float32

	// Transform converts between device RGB and the comparison space.
	Transform colorspace.Transform
}

// DefaultSetup returns a setup with the default size, target and no ink
// limit.
func DefaultSetup(t colorspace.Transform, primaries ...vector.Vector3) Setup {
	return Setup{
		Primaries: primaries,
		Size:      DefaultSize,
		Target:    DefaultTarget,
		InkLimit:  candidate.NoInkLimit,
		Transform: t,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (s Setup) Validate() error {
	switch {
	case len(s.Primaries) == 0:
		return NewConfigError("primaries", "at least one primary colour is required")
	case s.Size < MinSize:
		return NewConfigError("size", fmt.Sprintf("must be an integer greater than or equal to %d", MinSize))
	case s.Target < 1:
		return NewConfigError("target", "must be a positive integer")
	case s.InkLimit < 0 || math32.IsNaN(s.InkLimit):
		return NewConfigError("ink limit", "must be a non-negative number")
	case s.Transform == nil:
		return NewConfigError("profile", "a colour transform is required")
	}
	return nil
}

// PrimaryChannel holds the two output channels of one primary.
type PrimaryChannel struct {
	// Blend is the primary tinted by its chosen fraction, in device RGB.
	Blend []vector.Vector3
	// Mask is the chosen fraction replicated on all three components.
	Mask []vector.Vector3
}

// Stats describes a run.
type Stats struct {
	Resolution   int           `json:"resolution"`
	Combinations int           `json:"combinations"`
	Candidates   int           `json:"candidates"`
	Pruned       int           `json:"pruned"`
	Distinct     int           `json:"distinct_secondaries"`
	Workers      int           `json:"workers"`
	Index        string        `json:"index"`
	Generate     time.Duration `json:"generate_ns"`
	Build        time.Duration `json:"index_ns"`
	Map          time.Duration `json:"map_ns"`
}

// Result is a finished separation. Every channel is in canonical grid order
// (blue outermost, red fastest) and holds Size^3 colours.
type Result struct {
	Size      int
	Secondary []vector.Vector3
	Channels  []PrimaryChannel
	// Used holds the ids of the candidates chosen by at least one cell.
	Used  *roaring.Bitmap
	Stats Stats
}

// Separator runs separations. It is safe for concurrent use.
type Separator struct {
	opts options
}

// New creates a Separator.
func New(optFns ...Option) *Separator {
	return &Separator{opts: applyOptions(optFns)}
}

// Separate computes the separation described by setup.
//
// The context scopes logging and the worker group; cancellation is checked
// between phases, never inside the mapping phase.
func (s *Separator) Separate(ctx context.Context, setup Setup) (*Result, error) {
	if err := setup.Validate(); err != nil {
		return nil, err
	}

	log := s.opts.logger.WithProfile(setup.Transform.Name()).WithSize(setup.Size)
	mc := s.opts.metricsCollector
	n := len(setup.Primaries)

	params := candidate.Params{Target: setup.Target, InkLimit: setup.InkLimit}
	combinations, err := candidate.Combinations(candidate.Resolution(setup.Target, n), n)
	if err != nil {
		return nil, translateError(err)
	}

	reserved := EstimateBytes(combinations, n, setup.Size, s.opts.indexKind)
	if err := s.opts.resources.AcquireMemory(reserved); err != nil {
		return nil, translateError(fmt.Errorf("run needs about %d bytes: %w", reserved, err))
	}
	defer s.opts.resources.ReleaseMemory(reserved)

	primaries := make([]vector.Vector3, n)
	setup.Transform.ToComparison(primaries, setup.Primaries)
	white := colorspace.ToComparison(setup.Transform, vector.Splat(1))

	start := time.Now()
	set, err := candidate.Generate(primaries, white, params)
	if err != nil {
		return nil, translateError(err)
	}
	genDur := time.Since(start)
	mc.RecordGenerate(set.Stats.Combinations, set.Stats.Generated, genDur)
	log.LogGenerate(ctx, set.Stats, genDur)

	if set.Len() == 0 {
		return nil, ErrNoCandidates
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	idx, err := index.Build(s.opts.indexKind, set.Colors)
	buildDur := time.Since(start)
	mc.RecordIndexBuild(set.Len(), buildDur, err)
	log.LogIndex(ctx, s.opts.indexKind.String(), set.Len(), buildDur, err)
	if err != nil {
		return nil, fmt.Errorf("build index: %w", err)
	}

	cells, err := grid.Generate(setup.Size)
	if err != nil {
		return nil, err
	}
	setup.Transform.ToComparison(cells, cells)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	out, err := mapper.Map(ctx, mapper.Input{
		Grid:      cells,
		Index:     idx,
		Set:       set,
		White:     white,
		Primaries: primaries,
	}, s.opts.workers)
	mapDur := time.Since(start)
	workers := mapper.Workers(s.opts.workers, len(cells))
	mc.RecordMap(len(cells), workers, mapDur, err)
	if err != nil {
		log.LogMap(ctx, len(cells), workers, 0, mapDur, err)
		if errors.Is(err, mapper.ErrEmptyIndex) {
			return nil, ErrNoCandidates
		}
		return nil, err
	}
	log.LogMap(ctx, len(cells), out.Workers, int(out.Used.GetCardinality()), mapDur, nil)

	res := &Result{
		Size:      setup.Size,
		Secondary: out.Secondary,
		Channels:  make([]PrimaryChannel, n),
		Used:      out.Used,
		Stats: Stats{
			Resolution:   set.Stats.Resolution,
			Combinations: set.Stats.Combinations,
			Candidates:   set.Stats.Generated,
			Pruned:       set.Stats.Pruned,
			Distinct:     int(out.Used.GetCardinality()),
			Workers:      out.Workers,
			Index:        idx.Name(),
			Generate:     genDur,
			Build:        buildDur,
			Map:          mapDur,
		},
	}

	setup.Transform.FromComparison(res.Secondary, res.Secondary)
	for i, ch := range out.Channels {
		setup.Transform.FromComparison(ch.Blend, ch.Blend)
		res.Channels[i] = PrimaryChannel{Blend: ch.Blend, Mask: ch.Mask}
	}

	return res, nil
}

// Separate runs a single separation with a default Separator.
func Separate(ctx context.Context, setup Setup, optFns ...Option) (*Result, error) {
	return New(optFns...).Separate(ctx, setup)
}

// EstimateBytes estimates the peak memory of a run: the candidate set, the
// index over it, the converted grid and the output channels.
func EstimateBytes(combinations, primaries, size int, kind index.Kind) int64 {
	cells := int64(grid.Len(size))
	vec := int64(vector.Dimensions * 4)
	return candidate.EstimateBytes(combinations, primaries) +
		index.EstimateBytes(kind, combinations) +
		cells*vec*int64(2+2*primaries)
}
