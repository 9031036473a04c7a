package mapper

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/colorsep/candidate"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/internal/grid"
	"github.com/hupe1980/colorsep/vector"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyIndex is returned when there is no candidate to map to.
	ErrEmptyIndex = errors.New("mapper: index is empty")

	// ErrMismatch is returned when the index and the candidate set disagree.
	ErrMismatch = errors.New("mapper: inconsistent input")
)

// Input is everything a mapping pass reads. All colours are in the comparison
// space. Nothing in Input is modified.
type Input struct {
	Grid      []vector.Vector3
	Index     index.Index
	Set       *candidate.Set
	White     vector.Vector3
	Primaries []vector.Vector3
}

func (in *Input) validate() error {
	if in.Index == nil || in.Index.Len() == 0 || in.Set.Len() == 0 {
		return ErrEmptyIndex
	}
	if in.Index.Len() != in.Set.Len() {
		return fmt.Errorf("%w: index holds %d points, set holds %d candidates", ErrMismatch, in.Index.Len(), in.Set.Len())
	}
	if in.Set.N != len(in.Primaries) {
		return fmt.Errorf("%w: set mixes %d primaries, got %d", ErrMismatch, in.Set.N, len(in.Primaries))
	}
	return nil
}

// Channel holds the per-cell outputs for one primary.
type Channel struct {
	Blend []vector.Vector3 // Primary tinted at the chosen coverage
	Mask  []vector.Vector3 // Coverage replicated on all three components
}

// Output is the merged result of a mapping pass, in grid order.
type Output struct {
	Secondary []vector.Vector3
	Channels  []Channel
	Used      *roaring.Bitmap // Candidate ids chosen by at least one cell
	Workers   int
}

// Partial is the result of one worker for its slice [Start, Start+len(Secondary)).
type Partial struct {
	Start     int
	Secondary []vector.Vector3
	Channels  []Channel
	Used      *roaring.Bitmap
}

// Workers returns the effective worker count for n cells: requested values
// below 1 select GOMAXPROCS, and the result never exceeds n (or 1 when n is 0).
func Workers(requested, n int) int {
	w := requested
	if w < 1 {
		w = runtime.GOMAXPROCS(0)
	}
	return max(min(w, n), 1)
}

// Map finds the nearest candidate for every grid point using workers
// goroutines and merges the results.
//
// The context only scopes the worker group; a pass runs to completion once
// started.
func Map(ctx context.Context, in Input, workers int) (*Output, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	n := len(in.Grid)
	w := Workers(workers, n)
	partials := make([]Partial, w)

	g, _ := errgroup.WithContext(ctx)
	for i := range w {
		lo, hi := grid.Slice(n, w, i)
		g.Go(func() error {
			p, err := mapSlice(&in, lo, hi)
			if err != nil {
				return err
			}
			partials[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := Merge(partials, n, len(in.Primaries))
	out.Workers = w
	return out, nil
}

func mapSlice(in *Input, lo, hi int) (Partial, error) {
	m := hi - lo
	p := Partial{
		Start:     lo,
		Secondary: make([]vector.Vector3, m),
		Channels:  make([]Channel, len(in.Primaries)),
		Used:      roaring.New(),
	}
	for j := range p.Channels {
		p.Channels[j] = Channel{
			Blend: make([]vector.Vector3, m),
			Mask:  make([]vector.Vector3, m),
		}
	}

	for k, q := range in.Grid[lo:hi] {
		res, ok := in.Index.Nearest(q)
		if !ok {
			return Partial{}, ErrEmptyIndex
		}

		c := in.Set.At(int(res.ID))
		p.Secondary[k] = c.Color
		for j, f := range c.Fractions {
			p.Channels[j].Blend[k] = candidate.Tint(in.Primaries[j], in.White, f)
			p.Channels[j].Mask[k] = vector.Splat(f)
		}
		p.Used.Add(res.ID)
	}

	return p, nil
}

// Merge concatenates partials in slice order into an output of n cells with
// channels channels. Partials must cover [0, n) without overlap.
func Merge(partials []Partial, n, channels int) *Output {
	out := &Output{
		Secondary: make([]vector.Vector3, n),
		Channels:  make([]Channel, channels),
		Used:      roaring.New(),
	}
	for j := range out.Channels {
		out.Channels[j] = Channel{
			Blend: make([]vector.Vector3, n),
			Mask:  make([]vector.Vector3, n),
		}
	}

	for _, p := range partials {
		copy(out.Secondary[p.Start:], p.Secondary)
		for j := range p.Channels {
			copy(out.Channels[j].Blend[p.Start:], p.Channels[j].Blend)
			copy(out.Channels[j].Mask[p.Start:], p.Channels[j].Mask)
		}
		if p.Used != nil {
			out.Used.Or(p.Used)
		}
	}
	return out
}
