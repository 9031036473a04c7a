// Package colorsep generates colour-separation 3D LUTs.
//
// Given a set of primary ink colours and a colour profile, colorsep computes
// for every colour of a uniform RGB grid the closest mixture of the
// primaries that subtractive mixing can reach (a secondary) together with the
// blend fraction of each primary. The result is written as a set of .cube
// LUTs: the secondary LUT plus, per primary, a blend LUT and a mask LUT.
//
// # Quick Start
//
//	profile, _ := colorspace.Lookup("sRGB")
//	sep := colorsep.New(colorsep.WithWorkers(8))
//	res, err := sep.Separate(ctx, colorsep.Setup{
//	    Primaries: []vector.Vector3{{0.4, 0.2, 0.6}},
//	    Size:      64,
//	    Target:    colorsep.DefaultTarget,
//	    InkLimit:  candidate.NoInkLimit,
//	    Transform: profile,
//	})
//	files, err := colorsep.WriteLUTs(ctx, blobstore.NewLocalStore("out"), "purple.cube", res)
//
// # Pipeline
//
// A run converts the primaries, device white and the grid into the
// comparison space (absolute XYZ), enumerates every blend combination at the
// resolution the target implies, drops combinations over the ink limit,
// bulk-loads the survivors into a k-d tree and maps the grid in parallel.
// The secondary and blend channels are converted back to device RGB; masks
// hold raw fractions.
//
// Ties between equidistant secondaries resolve to the one generated first,
// so results do not depend on the index kind or the worker count.
package colorsep
