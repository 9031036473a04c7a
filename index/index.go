package index

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/hupe1980/colorsep/vector"
)

var (
	// ErrEmpty is returned when an index is built over no points.
	ErrEmpty = errors.New("index: empty point set")

	// ErrUnknownKind is returned for an unregistered index kind.
	ErrUnknownKind = errors.New("index: unknown kind")
)

// NoID marks a Result that has not matched any point yet.
const NoID = math.MaxUint32

// Result is a nearest-neighbour match.
type Result struct {
	ID       uint32  // Position of the point in the slice the index was built from
	Distance float32 // Squared Euclidean distance to the query
}

// Better reports whether a match at distance d with id beats r, breaking exact
// ties towards the lower id.
func (r Result) Better(id uint32, d float32) bool {
	return d < r.Distance || (d == r.Distance && id < r.ID)
}

// Unmatched returns the starting Result for a search.
func Unmatched() Result {
	return Result{ID: NoID, Distance: float32(math.Inf(1))}
}

// Fallback is returned when no distance compared (every distance was NaN).
// Point 0 is chosen so that the answer is still deterministic.
func Fallback() Result {
	return Result{ID: 0, Distance: float32(math.NaN())}
}

// Index answers exact nearest-neighbour queries.
type Index interface {
	// Name returns the index kind name.
	Name() string

	// Len returns the number of indexed points.
	Len() int

	// Nearest returns the point closest to q. ok is false only for an empty index.
	Nearest(q vector.Vector3) (r Result, ok bool)
}

// Kind selects an index implementation.
type Kind int

const (
	KindKDTree Kind = iota
	KindFlat
)

func (k Kind) String() string {
	switch k {
	case KindKDTree:
		return "kdtree"
	case KindFlat:
		return "flat"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// ParseKind parses an index kind name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "kdtree", "kd-tree":
		return KindKDTree, nil
	case "flat":
		return KindFlat, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// EstimateBytes estimates the memory an index of kind k needs for n points,
// not counting the points passed to Build.
func EstimateBytes(k Kind, n int) int64 {
	switch k {
	case KindKDTree:
		// Permuted point copy, ids and split axes.
		return int64(n) * (vector.Dimensions*4 + 4 + 1)
	default:
		return 0
	}
}
