package vector

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Dimensions is the number of components in a Vector3.
const Dimensions = 3

// Vector3 is an ordered triple of float32 components.
type Vector3 [Dimensions]float32

// New returns the vector (x, y, z).
func New(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Splat returns a vector with all three components set to x.
func Splat(x float32) Vector3 {
	return Vector3{x, x, x}
}

// Generate builds a vector by calling fn once per component index.
func Generate(fn func(i int) float32) Vector3 {
	return Vector3{fn(0), fn(1), fn(2)}
}

// At returns component i.
func (v Vector3) At(i int) float32 { return v[i] }

// Nth returns component i. It lets Vector3 serve as a spatial index point.
func (v Vector3) Nth(i int) float32 { return v[i] }

// Dims returns the number of components.
func (Vector3) Dims() int { return Dimensions }

// Set writes component i.
func (v *Vector3) Set(i int, x float32) { v[i] = x }

// Neg returns the additive inverse of v.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v[0], -v[1], -v[2]}
}

// Add returns v + w.
func (v Vector3) Add(w Vector3) Vector3 {
	return Vector3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vector3) Sub(w Vector3) Vector3 {
	return Vector3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns s * v.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{s * v[0], s * v[1], s * v[2]}
}

// ScaleBy returns s * v. It is the scalar-on-the-left form of Scale.
func ScaleBy(s float32, v Vector3) Vector3 {
	return v.Scale(s)
}

// Div returns v / s.
func (v Vector3) Div(s float32) Vector3 {
	return Vector3{v[0] / s, v[1] / s, v[2] / s}
}

// Mul returns the Hadamard (element-wise) product of v and w.
func (v Vector3) Mul(w Vector3) Vector3 {
	return Vector3{v[0] * w[0], v[1] * w[1], v[2] * w[2]}
}

// Quo returns the element-wise quotient of v and w.
func (v Vector3) Quo(w Vector3) Vector3 {
	return Vector3{v[0] / w[0], v[1] / w[1], v[2] / w[2]}
}

// Sum returns the sum of the components.
func (v Vector3) Sum() float32 {
	return v[0] + v[1] + v[2]
}

// Approx reports whether every component of a and b differs by at most tol.
func Approx(a, b Vector3, tol float32) bool {
	for i := range Dimensions {
		if math32.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
