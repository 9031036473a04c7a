// Command colorsep generates 3D LUTs that separate images into primary
// colours. See colorsep --help.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/blobstore"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/hupe1980/colorsep/internal/config"
	"github.com/hupe1980/colorsep/internal/resource"
	"github.com/muesli/termenv"
)

const helpText = `
Color Separations: generates 3D LUTs that separate an image into primary
colors, such as the inks of a screen print.

Usage:
  colorsep -p PROFILE -o OUTPUT -c R G B [-c R G B ...] [options]
  colorsep compare [--tolerance T] [--primaries N] REFERENCE OUTPUT
  colorsep profiles

Options:
  -p, --profile PROFILE   Named profile (see colorsep profiles) or the path
                          of an RGB ICC profile.
  -o, --output PATH       Location of the secondary 3D LUT. For each primary
                          i, PATH_i (blend) and PATH_im (mask) are written
                          next to it. s3:// and minio:// URLs are accepted;
                          a .zst or .lz4 suffix compresses the files.
  -c, --color R G B       A primary color, components from 0 to 255.
                          Repeat for more primaries. R,G,B also works.
  -s, --size N            3D LUT size, at least 2. Default: 64.
  -t, --target N          Minimum number of secondary colors to mix.
                          Default: 100000000.
  -l, --limit N           Ink limit: the maximum sum of primary fractions.
                          Default: no limit.
  -w, --workers N         Mapping goroutines. Default: one per CPU.
      --config FILE       TOML or YAML file with defaults for these options.
      --index KIND        Nearest neighbour index: kdtree or flat.
      --scale N           Value of a full-intensity component. Default: 255.
      --memory-limit N    Refuse runs needing more than N bytes.
      --io-limit N        Limit output throughput to N bytes per second.
      --compression KIND  none, zstd or lz4.
      --level N           zstd compression level.
      --report FILE       Write a JSON run report, - for standard output.
      --metrics FILE      Write Prometheus metrics in text format.
      --log-level LEVEL   debug, info, warn or error. Default: warn.
      --log-format FMT    text or json.
  -v, --version           Print the version.
  -h, --help              Print this help.
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line args and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...termenv.OutputOption) int {
	con := newConsole(stderr, opts...)

	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "compare":
			if err := runCompare(ctx, args[1:], stdout); err != nil {
				return con.fail(err)
			}
			return 0
		case "profiles":
			listProfiles(stdout)
			return 0
		}
	}

	cfg, act, err := parseArgs(args)
	if err != nil {
		return con.fail(err)
	}
	switch act {
	case actionHelp:
		fmt.Fprint(stdout, helpText)
		return 0
	case actionVersion:
		fmt.Fprintf(stdout, "Color Separations %s\n", colorsep.Version)
		return 0
	}

	if err := separate(ctx, cfg, stdout, stderr); err != nil {
		return con.fail(err)
	}
	return 0
}

func listProfiles(w io.Writer) {
	for _, name := range colorspace.Names() {
		fmt.Fprintln(w, name)
	}
}

// separate runs one separation and writes its LUTs, report and metrics.
func separate(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	profile, err := colorspace.Resolve(cfg.Profile)
	if err != nil {
		return colorsep.NewTransformError(cfg.Profile, err)
	}

	loc, err := blobstore.ParseLocation(cfg.Output)
	if err != nil {
		return err
	}
	rc := resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.MemoryLimit,
		IOLimitBytesPerSec: cfg.IOLimit,
	})
	store, err := openStore(ctx, loc, rc)
	if err != nil {
		return &OutputError{Location: cfg.Output, Err: err}
	}

	opts := []colorsep.Option{
		colorsep.WithWorkers(cfg.Workers),
		colorsep.WithIndexKind(cfg.IndexKind()),
		colorsep.WithLogger(cfg.Logger(stderr)),
		colorsep.WithResourceController(rc),
	}
	var prom *PrometheusCollector
	if cfg.Metrics != "" {
		prom = NewPrometheusCollector()
		opts = append(opts, colorsep.WithMetricsCollector(prom))
	}
	sep := colorsep.New(opts...)

	setup := cfg.Setup(profile)
	res, err := sep.Separate(ctx, setup)
	if err != nil {
		return err
	}

	files, err := sep.Write(ctx, store, loc.Name, res, func(o *colorsep.WriteOptions) {
		o.Compression = cfg.CompressionCodec()
		o.Level = cfg.Level
	})
	if err != nil {
		return &OutputError{Location: loc.String(), Err: err}
	}

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, colorsep.NewReport(setup, res, files), stdout); err != nil {
			return err
		}
	}
	if prom != nil {
		if err := prom.WriteFile(cfg.Metrics); err != nil {
			return fmt.Errorf("write metrics %s: %w", cfg.Metrics, err)
		}
	}
	return nil
}

// writeReport writes rep as JSON to path, or to stdout for "-".
func writeReport(path string, rep colorsep.Report, stdout io.Writer) error {
	data, err := rep.Marshal(codec.Default)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
