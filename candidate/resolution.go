package candidate

import "math"

// Resolution returns the smallest R >= 1 such that R^n >= target.
func Resolution(target, n int) int {
	if target <= 1 || n < 1 {
		return 1
	}

	r := int(math.Ceil(math.Pow(float64(target), 1/float64(n))))
	r = max(r, 1)

	// Pow is inexact; settle on the exact minimum with integer arithmetic.
	for r > 1 && powAtLeast(r-1, n, target) {
		r--
	}
	for !powAtLeast(r, n, target) {
		r++
	}

	return r
}

// Combinations returns r^n, or ErrTooManyCombinations if it exceeds
// MaxCombinations.
func Combinations(r, n int) (int, error) {
	total := 1
	for range n {
		if r != 0 && total > MaxCombinations/r {
			return 0, ErrTooManyCombinations
		}
		total *= r
	}
	return total, nil
}

// powAtLeast reports whether r^n >= target without overflowing.
func powAtLeast(r, n, target int) bool {
	if target <= 1 {
		return true
	}
	total := 1
	for range n {
		// total*r >= target, tested without forming the product.
		if total > (target-1)/r {
			return true
		}
		total *= r
	}
	return false
}

// Digits writes the base-radix digits of index into dst, least significant
// first. dst[i] is the fraction level of primary i.
func Digits(index, radix int, dst []int) {
	for i := range dst {
		dst[i] = index % radix
		index /= radix
	}
}

// Fraction maps a digit to its blend fraction digit/(radix-1).
//
// With a single level (radix 1) the only fraction is full coverage.
func Fraction(digit, radix int) float32 {
	if radix <= 1 {
		return 1
	}
	return float32(digit) / float32(radix-1)
}

// Admit converts digits to fractions in primary order, stopping at the first
// prefix whose running sum exceeds limit. It reports whether every digit was
// admitted; on false, dst holds only the fractions before the offending digit.
func Admit(digits []int, radix int, limit float32, dst []float32) bool {
	var total float32
	for i, d := range digits {
		f := Fraction(d, radix)
		total += f
		if total > limit {
			return false
		}
		dst[i] = f
	}
	return true
}
