// Package lut reads, writes and compares 3D LUTs in the .cube text format.
//
// A file starts with a LUT_3D_SIZE line and the unit input domain, followed
// by one "r g b" line per lattice point with red varying fastest:
//
//	LUT_3D_SIZE 2
//	DOMAIN_MIN 0 0 0
//	DOMAIN_MAX 1 1 1
//	0 0 0
//	1 0 0
//	...
//
// Values are clamped to [0, 1] on output and written in the shortest form
// that reads back to the same float32.
package lut
