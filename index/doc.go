// Package index provides nearest-neighbour indexes over candidate colours.
//
// Two index kinds are available:
//
//   - KDTree: bulk-loaded, balanced k-d tree (default)
//   - Flat: exhaustive scan, the reference implementation
//
// Both return the exact nearest neighbour by squared Euclidean distance. When
// several points are exactly equidistant from the query, the point with the
// lowest ID wins, so both kinds agree bit-for-bit on every query.
//
// Indexes are built once from the full point set and never mutated afterwards;
// Nearest is safe for concurrent use by any number of goroutines.
//
// # Subpackages
//
//   - kdtree: balanced k-d tree
//   - flat: exhaustive scan
package index
