package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArithmetic(t *testing.T) {
	const tolerance = 0.0005

	tests := []struct {
		name     string
		expected Vector3
		got      Vector3
	}{
		{"Negation", New(1, -1, 1), New(-1, 1, -1).Neg()},
		{"Addition", New(4, 4, 4), New(1, 2, 3).Add(New(3, 2, 1))},
		{"AdditionInverse", New(1, 2, 3), New(4, 4, 4).Sub(New(3, 2, 1))},
		{"ScalarMultiplication", New(2, 2, 2), ScaleBy(2, Splat(1))},
		{"ScalarMultiplicationCommutativity", New(2, 2, 2), Splat(1).Scale(2)},
		{"ScalarMultiplicationInverse", New(0.5, 0.5, 0.5), Splat(1).Div(2)},
		{"Hadamard", New(1, 4, 9), New(1, 2, 3).Mul(New(1, 2, 3))},
		{"HadamardInverse", New(1, 2, 3), New(1, 4, 9).Quo(New(1, 2, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, Approx(tt.expected, tt.got, tolerance), "%v !~= %v", tt.expected, tt.got)
		})
	}
}

func TestDivisionByZeroPropagates(t *testing.T) {
	v := New(1, 0, -1).Div(0)
	assert.True(t, math.IsInf(float64(v[0]), 1))
	assert.True(t, math.IsNaN(float64(v[1])))
	assert.True(t, math.IsInf(float64(v[2]), -1))

	w := Splat(1).Quo(New(0, 1, 2))
	assert.True(t, math.IsInf(float64(w[0]), 1))
	assert.Equal(t, float32(0.5), w[2])
}

func TestAccessors(t *testing.T) {
	v := Generate(func(i int) float32 { return float32(i * 10) })
	assert.Equal(t, New(0, 10, 20), v)
	assert.Equal(t, 3, v.Dims())

	for i := range Dimensions {
		assert.Equal(t, v.At(i), v.Nth(i))
	}

	v.Set(1, 7)
	assert.Equal(t, float32(7), v.At(1))
	assert.Equal(t, float32(27), v.Sum())
}

func TestValueSemantics(t *testing.T) {
	a := New(1, 2, 3)
	b := a
	b.Set(0, 9)
	assert.Equal(t, float32(1), a[0], "copies must not alias")
}
