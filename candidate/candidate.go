package candidate

import (
	"errors"
	"math"

	"github.com/chewxy/math32"
	"github.com/hupe1980/colorsep/vector"
)

var (
	// ErrNoPrimaries is returned when generation is attempted without primaries.
	ErrNoPrimaries = errors.New("candidate: at least one primary is required")

	// ErrInvalidTarget is returned when the target candidate count is not positive.
	ErrInvalidTarget = errors.New("candidate: target must be positive")

	// ErrInvalidInkLimit is returned when the ink limit is negative or NaN.
	ErrInvalidInkLimit = errors.New("candidate: ink limit must be a non-negative number")

	// ErrTooManyCombinations is returned when R^N exceeds MaxCombinations.
	ErrTooManyCombinations = errors.New("candidate: too many combinations")
)

// MaxCombinations bounds R^N so that every candidate id fits in a uint32
// and the count fits in an int on every platform.
const MaxCombinations = math.MaxInt32

// preallocLimit caps the up-front capacity of a Set; larger sets grow on append.
const preallocLimit = 1 << 20

// NoInkLimit disables ink-limit pruning.
var NoInkLimit = float32(math.Inf(1))

// Candidate is one achievable secondary: the mixed colour and the blend
// fraction used for each primary, in primary order.
type Candidate struct {
	Color     vector.Vector3
	Fractions []float32
}

// Ink returns the sum of the blend fractions.
func (c Candidate) Ink() float32 {
	var total float32
	for _, f := range c.Fractions {
		total += f
	}
	return total
}

// Params configures generation.
type Params struct {
	// Target is the desired number of combinations before pruning. Must be >= 1.
	Target int

	// InkLimit is the maximum sum of blend fractions. Use NoInkLimit to disable.
	InkLimit float32
}

// DefaultParams returns params with the given target and no ink limit.
func DefaultParams(target int) Params {
	return Params{Target: target, InkLimit: NoInkLimit}
}

// Validate checks params for a run with n primaries.
func (p Params) Validate(n int) error {
	if n < 1 {
		return ErrNoPrimaries
	}
	if p.Target < 1 {
		return ErrInvalidTarget
	}
	if p.InkLimit < 0 || math32.IsNaN(p.InkLimit) {
		return ErrInvalidInkLimit
	}
	return nil
}

// Stats describes a generation pass.
type Stats struct {
	Resolution   int // Fraction levels per primary
	Combinations int // R^N combinations enumerated
	Generated    int // Candidates that survived the ink limit
	Pruned       int // Combinations abandoned by the ink limit
}

// Set holds generated candidates in linear-index order.
//
// Colours and fractions live in flat slices; candidate i owns
// Fractions[i*N : (i+1)*N]. A Set is immutable once returned by Generate.
type Set struct {
	N         int
	Colors    []vector.Vector3
	Fractions []float32
	Stats     Stats
}

// Len returns the number of candidates.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Colors)
}

// At returns candidate i. The returned fractions alias the set and must not be modified.
func (s *Set) At(i int) Candidate {
	lo, hi := i*s.N, (i+1)*s.N
	return Candidate{
		Color:     s.Colors[i],
		Fractions: s.Fractions[lo:hi:hi],
	}
}

// EstimateBytes estimates the memory needed to hold combinations candidates
// of n primaries.
func EstimateBytes(combinations, n int) int64 {
	per := int64(vector.Dimensions*4 + n*4)
	return int64(combinations) * per
}
