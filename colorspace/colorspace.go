package colorspace

import (
	"errors"

	"github.com/hupe1980/colorsep/vector"
)

var (
	// ErrUnknownProfile is returned when a name matches no built-in profile
	// and no readable file.
	ErrUnknownProfile = errors.New("colorspace: unknown profile")

	// ErrNotRGB is returned for ICC profiles whose data colour space is not RGB.
	ErrNotRGB = errors.New("colorspace: only RGB profiles are supported")

	// ErrUnsupportedProfile is returned for RGB profiles that lack the
	// matrix/TRC tags.
	ErrUnsupportedProfile = errors.New("colorspace: unsupported profile")

	// ErrSingularMatrix is returned when a colour matrix cannot be inverted.
	ErrSingularMatrix = errors.New("colorspace: singular matrix")
)

// Transform converts colours between device RGB and the comparison space.
//
// Both methods convert src into dst element by element, preserving order.
// dst must be at least as long as src and may be the same slice. A Transform
// must be safe for concurrent use.
type Transform interface {
	// Name identifies the profile.
	Name() string

	// ToComparison converts device RGB into the comparison space.
	ToComparison(dst, src []vector.Vector3)

	// FromComparison converts comparison-space colours back into device RGB.
	FromComparison(dst, src []vector.Vector3)
}

// ToComparison converts a single colour with t.
func ToComparison(t Transform, c vector.Vector3) vector.Vector3 {
	buf := []vector.Vector3{c}
	t.ToComparison(buf, buf)
	return buf[0]
}

// FromComparison converts a single colour back with t.
func FromComparison(t Transform, c vector.Vector3) vector.Vector3 {
	buf := []vector.Vector3{c}
	t.FromComparison(buf, buf)
	return buf[0]
}
