package colorspace

import (
	"fmt"
	"math"
)

// detTolerance matches the determinant threshold used by common CMMs.
const detTolerance = 1e-4

// XYZ is a CIE XYZ tristimulus value with Y = 1 for the reference white.
type XYZ struct {
	X, Y, Z float64
}

// Chromaticity is a CIE xy chromaticity coordinate.
type Chromaticity struct {
	X, Y float64
}

// XYZ returns the tristimulus value of c with luminance 1.
func (c Chromaticity) XYZ() XYZ {
	return XYZ{X: c.X / c.Y, Y: 1, Z: (1 - c.X - c.Y) / c.Y}
}

// Standard illuminants.
var (
	// D50 is the ICC profile connection space illuminant.
	D50 = XYZ{X: 0.9642, Y: 1.0, Z: 0.8249}

	D50xy = Chromaticity{X: 0.3457, Y: 0.3585}
	D65xy = Chromaticity{X: 0.3127, Y: 0.3290}
	DCIxy = Chromaticity{X: 0.3140, Y: 0.3510}
)

// Matrix3 is a row-major 3x3 matrix.
type Matrix3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Diagonal(1, 1, 1)
}

// Diagonal returns a diagonal matrix.
func Diagonal(a, b, c float64) Matrix3 {
	return Matrix3{{a, 0, 0}, {0, b, 0}, {0, 0, c}}
}

// Mul returns m * n.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	var r Matrix3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}
	return r
}

// Apply returns m * v.
func (m Matrix3) Apply(v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// ApplyXYZ returns m * c.
func (m Matrix3) ApplyXYZ(c XYZ) XYZ {
	v := m.Apply([3]float64{c.X, c.Y, c.Z})
	return XYZ{X: v[0], Y: v[1], Z: v[2]}
}

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Det()
	if math.Abs(det) < detTolerance || math.IsNaN(det) {
		return Matrix3{}, fmt.Errorf("%w: determinant %g", ErrSingularMatrix, det)
	}

	inv := 1 / det
	return Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * inv,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * inv,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * inv,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * inv,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * inv,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * inv,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * inv,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * inv,
		},
	}, nil
}

// Bradford is the Lam-Rigg cone response matrix.
var Bradford = Matrix3{
	{0.8951, 0.2664, -0.1614},
	{-0.7502, 1.7135, 0.0367},
	{0.0389, -0.0685, 1.0296},
}

// AdaptationMatrix returns the von Kries style matrix that maps colours seen
// under from to colours seen under to, in the cone space of cone.
func AdaptationMatrix(cone Matrix3, from, to XYZ) (Matrix3, error) {
	coneInv, err := cone.Inverse()
	if err != nil {
		return Matrix3{}, err
	}

	src := cone.ApplyXYZ(from)
	dst := cone.ApplyXYZ(to)
	if math.Abs(src.X) < detTolerance || math.Abs(src.Y) < detTolerance || math.Abs(src.Z) < detTolerance {
		return Matrix3{}, fmt.Errorf("%w: degenerate source white %v", ErrSingularMatrix, from)
	}

	scale := Diagonal(dst.X/src.X, dst.Y/src.Y, dst.Z/src.Z)
	return coneInv.Mul(scale.Mul(cone)), nil
}

// RGBToXYZ builds the matrix from linear RGB to D50-relative XYZ for the given
// white point and primaries. The native white is adapted to D50 with Bradford.
func RGBToXYZ(white Chromaticity, primaries [3]Chromaticity) (Matrix3, error) {
	var p Matrix3
	for j, c := range primaries {
		p[0][j] = c.X
		p[1][j] = c.Y
		p[2][j] = 1 - c.X - c.Y
	}

	pInv, err := p.Inverse()
	if err != nil {
		return Matrix3{}, err
	}

	w := white.XYZ()
	coef := pInv.Apply([3]float64{w.X, w.Y, w.Z})

	var m Matrix3
	for i := range 3 {
		for j := range 3 {
			m[i][j] = coef[j] * p[i][j]
		}
	}

	adapt, err := AdaptationMatrix(Bradford, w, D50)
	if err != nil {
		return Matrix3{}, err
	}
	return adapt.Mul(m), nil
}
