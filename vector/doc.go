// Package vector provides Vector3, the three-component float32 value type used
// for colours (device RGB or CIE XYZ) and for blend-fraction triples.
//
// Vector3 is a plain array, so it is copied by value and compared with ==.
// All arithmetic is total over finite floats; division by zero yields the
// usual IEEE infinities and NaNs.
//
// # Usage
//
//	white := vector.Splat(1)
//	tint := white.Sub(v).Scale(0.5)
//	filtered := tint.Mul(white).Quo(white)
package vector
