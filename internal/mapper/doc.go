// Package mapper assigns every grid point its nearest candidate in parallel.
//
// The grid is cut into one contiguous slice per worker. Workers share the
// index and candidate set read-only and write only to a private Partial, which
// is handed back through the worker's own slot. After the join the partials
// are concatenated in worker order, so the output does not depend on the
// worker count or on scheduling.
package mapper
