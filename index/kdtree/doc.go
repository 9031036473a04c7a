// Package kdtree implements a bulk-loaded, balanced k-d tree for exact
// nearest-neighbour search over Vector3 points.
//
// The tree is stored implicitly: for a range [lo, hi) of the permuted point
// array, the splitting node sits at the midpoint and its subtrees occupy the
// two halves. Ranges no larger than the leaf size are scanned linearly. Each
// split uses the axis of widest spread within its range.
package kdtree
