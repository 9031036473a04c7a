package colorspace

import (
	"github.com/hupe1980/colorsep/vector"
)

// Compile-time check to ensure RGBProfile satisfies the Transform interface.
var _ Transform = (*RGBProfile)(nil)

// RGBProfile is a matrix/TRC RGB profile used with the absolute colorimetric
// intent. It is immutable and safe for concurrent use.
type RGBProfile struct {
	name       string
	curves     [3]ToneCurve
	toXYZ      Matrix3 // linear RGB -> absolute XYZ
	fromXYZ    Matrix3 // absolute XYZ -> linear RGB
	mediaWhite XYZ
	adopted    XYZ
}

// NewRGBProfile builds a profile from its linear-RGB to D50 matrix, the three
// channel curves and the media white. Colours are adapted from D50 to the
// media white so that the comparison space is absolute XYZ.
func NewRGBProfile(name string, toPCS Matrix3, curves [3]ToneCurve, mediaWhite XYZ) (*RGBProfile, error) {
	toAbs, err := AdaptationMatrix(Bradford, D50, mediaWhite)
	if err != nil {
		return nil, err
	}

	toXYZ := toAbs.Mul(toPCS)
	fromXYZ, err := toXYZ.Inverse()
	if err != nil {
		return nil, err
	}

	return &RGBProfile{
		name:       name,
		curves:     curves,
		toXYZ:      toXYZ,
		fromXYZ:    fromXYZ,
		mediaWhite: mediaWhite,
		adopted:    D50,
	}, nil
}

// FromPrimaries builds a display profile from chromaticities, the way ICC v4
// display profiles are made: the native white is adapted to D50 and the media
// white is D50.
func FromPrimaries(name string, white Chromaticity, primaries [3]Chromaticity, curve ToneCurve) (*RGBProfile, error) {
	m, err := RGBToXYZ(white, primaries)
	if err != nil {
		return nil, err
	}

	p, err := NewRGBProfile(name, m, [3]ToneCurve{curve, curve, curve}, D50)
	if err != nil {
		return nil, err
	}
	p.adopted = white.XYZ()
	return p, nil
}

// Name returns the profile name.
func (p *RGBProfile) Name() string { return p.name }

// MediaWhite returns the media white the comparison space is relative to.
func (p *RGBProfile) MediaWhite() XYZ { return p.mediaWhite }

// AdoptedWhite returns the native white of the device before adaptation to
// the profile connection space, when known. It is D50 otherwise.
func (p *RGBProfile) AdoptedWhite() XYZ { return p.adopted }

// ToComparison converts device RGB to absolute XYZ.
func (p *RGBProfile) ToComparison(dst, src []vector.Vector3) {
	_ = dst[:len(src)]
	for i, c := range src {
		lin := [3]float64{
			p.curves[0].Eval(float64(c[0])),
			p.curves[1].Eval(float64(c[1])),
			p.curves[2].Eval(float64(c[2])),
		}
		xyz := p.toXYZ.Apply(lin)
		dst[i] = vector.New(float32(xyz[0]), float32(xyz[1]), float32(xyz[2]))
	}
}

// FromComparison converts absolute XYZ back to device RGB. Out-of-gamut
// colours produce components outside [0, 1]; they are not clipped here.
func (p *RGBProfile) FromComparison(dst, src []vector.Vector3) {
	_ = dst[:len(src)]
	for i, c := range src {
		lin := p.fromXYZ.Apply([3]float64{float64(c[0]), float64(c[1]), float64(c[2])})
		dst[i] = vector.New(
			float32(p.curves[0].Invert(lin[0])),
			float32(p.curves[1].Invert(lin[1])),
			float32(p.curves[2].Invert(lin[2])),
		)
	}
}
