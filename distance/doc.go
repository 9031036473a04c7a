// Package distance provides Euclidean distance calculations on colour vectors.
//
// Nearest-neighbour search compares squared distances, which preserve ordering
// and skip the square root.
//
// # Usage
//
//	d2 := distance.SquaredL2(a, b)
//	d := distance.L2(a, b)
package distance
