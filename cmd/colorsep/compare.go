package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/blobstore"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/lut"
)

// DefaultTolerance is the per-component tolerance of compare.
const DefaultTolerance = 5e-4

const compareUsage = `Usage: colorsep compare [--tolerance T] [--primaries N] REFERENCE OUTPUT

Compares two 3D LUTs component by component. With --primaries, the blend and
mask LUTs written next to each file for N primaries are compared as well.
Locations may be local paths or s3:// and minio:// URLs, optionally with a
.zst or .lz4 suffix.
`

// runCompare implements the compare subcommand.
func runCompare(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("compare", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tolerance := fs.Float64("tolerance", DefaultTolerance, "maximum difference per component")
	primaries := fs.Int("primaries", 0, "number of primaries whose LUTs are compared too")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, compareUsage)
			return nil
		}
		return fmt.Errorf("compare: %w", err)
	}
	if fs.NArg() != 2 {
		return errors.New("compare needs a reference and an output location")
	}
	if *primaries < 0 || !(*tolerance >= 0) {
		return errors.New("compare needs a non-negative tolerance and primary count")
	}

	want, err := blobstore.ParseLocation(fs.Arg(0))
	if err != nil {
		return err
	}
	got, err := blobstore.ParseLocation(fs.Arg(1))
	if err != nil {
		return err
	}

	wantNames := colorsep.OutputNames(want.Name, *primaries, codec.CompressionNone)
	gotNames := colorsep.OutputNames(got.Name, *primaries, codec.CompressionNone)
	for i := range wantNames {
		w, err := readLUT(ctx, want.WithName(wantNames[i]))
		if err != nil {
			return err
		}
		g, err := readLUT(ctx, got.WithName(gotNames[i]))
		if err != nil {
			return err
		}
		if err := lut.Compare(w, g, float32(*tolerance)); err != nil {
			return fmt.Errorf("%s: %w", got.WithName(gotNames[i]), err)
		}
		fmt.Fprintf(stdout, "%s: ok\n", got.WithName(gotNames[i]))
	}
	return nil
}

// readLUT loads and decodes the LUT at loc, decompressing by suffix.
func readLUT(ctx context.Context, loc blobstore.Location) (*lut.LUT, error) {
	store, err := openStore(ctx, loc, nil)
	if err != nil {
		return nil, err
	}
	data, err := blobstore.ReadAll(ctx, store, loc.Name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", loc, err)
	}

	_, comp := codec.SplitExt(loc.Name)
	r, err := codec.NewReader(bytes.NewReader(data), comp)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	l, err := lut.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", loc, err)
	}
	return l, nil
}
