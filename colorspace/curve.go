package colorspace

import (
	"fmt"
	"math"
	"sort"
)

// ToneCurve maps an encoded channel value to its linear value.
//
// Curves are defined on [0, 1] and extended to negative input by odd
// symmetry, so that out-of-gamut colours survive a round trip.
type ToneCurve interface {
	// Eval linearises x.
	Eval(x float64) float64

	// Invert encodes a linear value y.
	Invert(y float64) float64
}

// symmetric evaluates fn on |x| and restores the sign of x.
func symmetric(fn func(float64) float64, x float64) float64 {
	if x < 0 {
		return -fn(-x)
	}
	return fn(x)
}

// Parametric is an ICC parametricCurveType function. Type selects one of the
// five ICC forms; Params holds g, a, b, c, d, e, f as far as the type uses
// them:
//
//	0: y = x^g
//	1: y = (a·x+b)^g            for x >= -b/a, else 0
//	2: y = (a·x+b)^g + c        for x >= -b/a, else c
//	3: y = (a·x+b)^g            for x >= d, else c·x
//	4: y = (a·x+b)^g + e        for x >= d, else c·x + f
type Parametric struct {
	Type   int
	Params []float64
}

// parametricParams is the parameter count of each function type.
var parametricParams = [...]int{1, 3, 4, 5, 7}

// NewParametric validates and returns a parametric curve.
func NewParametric(typ int, params ...float64) (*Parametric, error) {
	if typ < 0 || typ >= len(parametricParams) {
		return nil, fmt.Errorf("%w: parametric curve type %d", ErrUnsupportedProfile, typ)
	}
	if len(params) != parametricParams[typ] {
		return nil, fmt.Errorf("%w: parametric curve type %d needs %d parameters, got %d",
			ErrUnsupportedProfile, typ, parametricParams[typ], len(params))
	}
	if params[0] == 0 || (typ > 0 && params[1] == 0) {
		return nil, fmt.Errorf("%w: degenerate parametric curve", ErrUnsupportedProfile)
	}
	return &Parametric{Type: typ, Params: params}, nil
}

// Gamma returns the pure power curve y = x^g.
func Gamma(g float64) *Parametric {
	return &Parametric{Type: 0, Params: []float64{g}}
}

// pow is math.Pow with negative bases clipped to 0.
func pow(base, exp float64) float64 {
	if base <= 0 {
		return 0
	}
	return math.Pow(base, exp)
}

func (p *Parametric) Eval(x float64) float64 {
	return symmetric(p.eval, x)
}

func (p *Parametric) eval(x float64) float64 {
	v := p.Params
	g := v[0]
	switch p.Type {
	case 0:
		return pow(x, g)
	case 1:
		if x >= -v[2]/v[1] {
			return pow(v[1]*x+v[2], g)
		}
		return 0
	case 2:
		if x >= -v[2]/v[1] {
			return pow(v[1]*x+v[2], g) + v[3]
		}
		return v[3]
	case 3:
		if x >= v[4] {
			return pow(v[1]*x+v[2], g)
		}
		return v[3] * x
	default:
		if x >= v[4] {
			return pow(v[1]*x+v[2], g) + v[5]
		}
		return v[3]*x + v[6]
	}
}

func (p *Parametric) Invert(y float64) float64 {
	return symmetric(p.invert, y)
}

func (p *Parametric) invert(y float64) float64 {
	v := p.Params
	ig := 1 / v[0]
	switch p.Type {
	case 0:
		return pow(y, ig)
	case 1:
		if y <= 0 {
			return -v[2] / v[1]
		}
		return (pow(y, ig) - v[2]) / v[1]
	case 2:
		if y <= v[3] {
			return -v[2] / v[1]
		}
		return (pow(y-v[3], ig) - v[2]) / v[1]
	case 3:
		if y >= pow(v[1]*v[4]+v[2], v[0]) {
			return (pow(y, ig) - v[2]) / v[1]
		}
		if v[3] == 0 {
			return v[4]
		}
		return y / v[3]
	default:
		if y >= pow(v[1]*v[4]+v[2], v[0])+v[5] {
			return (pow(y-v[5], ig) - v[2]) / v[1]
		}
		if v[3] == 0 {
			return v[4]
		}
		return (y - v[6]) / v[3]
	}
}

// Table is a sampled curve with entries spaced evenly over [0, 1]. Values
// between samples are interpolated linearly and values above 1 extrapolate
// the last segment. The samples must be non-decreasing.
type Table []float64

func (t Table) Eval(x float64) float64 {
	return symmetric(t.eval, x)
}

func (t Table) eval(x float64) float64 {
	switch len(t) {
	case 0:
		return x
	case 1:
		return t[0]
	}

	last := len(t) - 1
	pos := x * float64(last)
	i := min(int(pos), last-1)
	frac := pos - float64(i)
	return t[i] + (t[i+1]-t[i])*frac
}

func (t Table) Invert(y float64) float64 {
	return symmetric(t.invert, y)
}

func (t Table) invert(y float64) float64 {
	switch len(t) {
	case 0:
		return y
	case 1:
		return 1
	}

	last := len(t) - 1
	if y <= t[0] {
		return 0
	}

	// First sample at or above y; the segment ending there brackets y.
	j := sort.SearchFloat64s(t, y)
	if j > last {
		j = last
	}
	i := j - 1

	span := t[j] - t[i]
	if span == 0 {
		return float64(j) / float64(last)
	}
	return (float64(i) + (y-t[i])/span) / float64(last)
}
