// Package colorspace converts colours between device RGB and the comparison
// space used for mixing and nearest-neighbour search.
//
// The comparison space is absolute CIE XYZ. Profiles follow the ICC
// matrix/TRC model: each device channel is linearised through a tone curve,
// the linear triple is mapped to D50-relative XYZ by a 3x3 matrix, and the
// result is adapted from D50 to the media white with the Bradford transform.
//
// Profiles come either from the built-in table (see Names) or from ICC files
// holding the rXYZ/gXYZ/bXYZ, rTRC/gTRC/bTRC and wtpt tags. Resolve accepts
// both.
package colorspace
