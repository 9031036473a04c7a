package candidate

import "github.com/hupe1980/colorsep/vector"

// Tint returns f*primary + (1-f)*white, the colour of primary laid down at
// coverage f on a white substrate.
func Tint(primary, white vector.Vector3, f float32) vector.Vector3 {
	return vector.ScaleBy(f, primary).Add(vector.ScaleBy(1-f, white))
}

// Mix filters running through primary at coverage f.
func Mix(running, primary, white vector.Vector3, f float32) vector.Vector3 {
	return running.Mul(Tint(primary, white, f).Quo(white))
}
