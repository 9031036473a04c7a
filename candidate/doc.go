// Package candidate enumerates the secondary colours that can be mixed from a
// set of primaries under an ink limit.
//
// Each primary gets R evenly spaced blend fractions 0, 1/(R-1), ..., 1, where
// R is the smallest resolution with R^N >= target for N primaries. Every one of
// the R^N combinations is identified by a linear index whose base-R digits are
// the per-primary fraction levels, primary 0 being the least significant digit.
//
// Mixing is subtractive: starting from white, each primary filters the running
// colour by (f*primary + (1-f)*white) / white.
//
// Combinations whose running fraction sum exceeds the ink limit are abandoned
// as soon as the offending digit is reached, so no candidate in a Set ever
// violates the limit.
package candidate
