// Package testutil provides testing utilities for colorsep.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random colours, computing exact
// nearest neighbours by brute force, and building small colour grids.
//
// # Random Colour Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000)        // uniform in [0, 1)^3
//	pts = rng.ClusteredPoints(1000, 5, 0.05)
//
// # Exact Search (Ground Truth)
//
//	res := testutil.BruteForceNearest(points, query)
package testutil
