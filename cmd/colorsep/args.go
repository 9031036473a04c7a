package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/hupe1980/colorsep/internal/config"
)

// action is what a parsed command line asks for besides a separation.
type action int

const (
	actionRun action = iota
	actionHelp
	actionVersion
)

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

// MissingArgumentError is returned when an option is the last argument but
// needs a value.
type MissingArgumentError struct {
	Option string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing argument for %s", e.Option)
}

// UnknownOptionError is returned for arguments that are not options.
type UnknownOptionError struct {
	Option string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %s", e.Option)
}

// InvalidValueError is returned when an option value does not parse or is
// out of range. Option is the long option name without dashes.
type InvalidValueError struct {
	Option string
	Value  string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s", e.Value, e.Option)
}

// optionSpec describes one command line option.
type optionSpec struct {
	name  string // long name, also the flag name
	short string
	args  int
}

var optionSpecs = []optionSpec{
	{name: "profile", short: "p", args: 1},
	{name: "output", short: "o", args: 1},
	{name: "color", short: "c", args: 3},
	{name: "size", short: "s", args: 1},
	{name: "target", short: "t", args: 1},
	{name: "limit", short: "l", args: 1},
	{name: "workers", short: "w", args: 1},
	{name: "config", args: 1},
	{name: "index", args: 1},
	{name: "scale", args: 1},
	{name: "memory-limit", args: 1},
	{name: "io-limit", args: 1},
	{name: "compression", args: 1},
	{name: "level", args: 1},
	{name: "report", args: 1},
	{name: "metrics", args: 1},
	{name: "log-level", args: 1},
	{name: "log-format", args: 1},
	{name: "version", short: "v"},
	{name: "help", short: "h"},
}

var optionIndex = func() map[string]optionSpec {
	m := make(map[string]optionSpec, 2*len(optionSpecs)+1)
	for _, o := range optionSpecs {
		m["--"+o.name] = o
		if o.short != "" {
			m["-"+o.short] = o
		}
	}
	m["-?"] = m["--help"]
	return m
}()

// normalize rewrites args into the canonical --name=value form understood by
// the flag set. Option names are matched case-insensitively; --color takes
// three values, or one "R,G,B" value. The value of --config is returned
// separately so that the file can be loaded before the other flags apply.
func normalize(args []string) (out []string, configPath string, err error) {
	out = make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		key, inline, hasInline := strings.Cut(arg, "=")
		spec, ok := optionIndex[strings.ToLower(key)]
		if !ok || (hasInline && spec.args == 0) {
			return nil, "", &UnknownOptionError{Option: arg}
		}

		if spec.args == 0 {
			out = append(out, "--"+spec.name)
			// Later arguments are not looked at, as with any early exit.
			return out, configPath, nil
		}

		var values []string
		switch {
		case hasInline:
			values = []string{inline}
		case spec.name == "color" && i+1 < len(args) && strings.Contains(args[i+1], ","):
			values = args[i+1 : i+2]
			i++
		case i+spec.args < len(args):
			values = args[i+1 : i+1+spec.args]
			i += spec.args
		default:
			return nil, "", &MissingArgumentError{Option: arg}
		}

		value := strings.Join(values, ",")
		if spec.name == "config" {
			configPath = value
			continue
		}
		out = append(out, "--"+spec.name+"="+value)
	}
	return out, configPath, nil
}

// flagState receives parsed values. The first --color replaces any colours
// from a config file; later ones append.
type flagState struct {
	cfg       *config.Config
	colorsSet bool
	err       error
}

func (s *flagState) fail(err error) error {
	if s.err == nil {
		s.err = err
	}
	return err
}

func (s *flagState) color(v string) error {
	parts := strings.Split(v, ",")
	if len(parts) != 3 {
		return s.fail(&InvalidValueError{Option: "color", Value: v})
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return s.fail(&InvalidValueError{Option: "color", Value: p})
		}
		c[i] = float32(f)
	}
	if !s.colorsSet {
		s.cfg.Colors = nil
		s.colorsSet = true
	}
	s.cfg.Colors = append(s.cfg.Colors, c)
	return nil
}

func (s *flagState) intValue(name string, dst *int, minimum int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < minimum {
			return s.fail(&InvalidValueError{Option: name, Value: v})
		}
		*dst = n
		return nil
	}
}

func (s *flagState) int64Value(name string, dst *int64) func(string) error {
	return func(v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return s.fail(&InvalidValueError{Option: name, Value: v})
		}
		*dst = n
		return nil
	}
}

func (s *flagState) limit(v string) error {
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || math.IsNaN(f) || f < 0 {
		return s.fail(&InvalidValueError{Option: "limit", Value: v})
	}
	s.cfg.InkLimit = f
	return nil
}

func (s *flagState) scale(v string) error {
	f, err := strconv.ParseFloat(v, 32)
	if err != nil || !(f > 0) || math.IsInf(f, 0) {
		return s.fail(&InvalidValueError{Option: "scale", Value: v})
	}
	s.cfg.Scale = float32(f)
	return nil
}

func stringValue(dst *string) func(string) error {
	return func(v string) error {
		*dst = v
		return nil
	}
}

func (s *flagState) stop(err error) func(string) error {
	return func(string) error { return s.fail(err) }
}

// newFlagSet registers every option on a flag set bound to cfg.
func newFlagSet(cfg *config.Config) (*flag.FlagSet, *flagState) {
	s := &flagState{cfg: cfg}
	fs := flag.NewFlagSet("colorsep", flag.ContinueOnError)
	fs.Usage = func() {}

	fs.Func("profile", "named profile or ICC profile path", stringValue(&cfg.Profile))
	fs.Func("output", "secondary 3D LUT location", stringValue(&cfg.Output))
	fs.Func("color", "primary colour R G B", s.color)
	fs.Func("size", "3D LUT size", s.intValue("size", &cfg.Size, 2))
	fs.Func("target", "target number of secondaries", s.intValue("target", &cfg.Target, 1))
	fs.Func("limit", "ink limit", s.limit)
	fs.Func("workers", "worker count", s.intValue("workers", &cfg.Workers, 0))
	fs.Func("index", "nearest neighbour index", stringValue(&cfg.Index))
	fs.Func("scale", "full-intensity component value", s.scale)
	fs.Func("memory-limit", "memory budget in bytes", s.int64Value("memory-limit", &cfg.MemoryLimit))
	fs.Func("io-limit", "output throughput in bytes per second", s.int64Value("io-limit", &cfg.IOLimit))
	fs.Func("compression", "none, zstd or lz4", stringValue(&cfg.Compression))
	fs.Func("level", "compression level", s.intValue("level", &cfg.Level, 0))
	fs.Func("report", "JSON run report path", stringValue(&cfg.Report))
	fs.Func("metrics", "Prometheus text file path", stringValue(&cfg.Metrics))
	fs.Func("log-level", "debug, info, warn or error", stringValue(&cfg.Log.Level))
	fs.Func("log-format", "text or json", stringValue(&cfg.Log.Format))
	fs.BoolFunc("version", "print the version", s.stop(errVersion))
	fs.BoolFunc("help", "print this help", s.stop(errHelp))
	return fs, s
}

// parseArgs turns the command line into a configuration. Options apply in
// order over the config file named by --config, or over the defaults.
func parseArgs(args []string) (config.Config, action, error) {
	norm, configPath, err := normalize(args)
	if err != nil {
		return config.Config{}, actionRun, err
	}

	cfg := config.Default()
	if configPath != "" {
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, actionRun, err
		}
	}

	fs, state := newFlagSet(&cfg)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(norm); err != nil {
		switch {
		case errors.Is(state.err, errHelp):
			return cfg, actionHelp, nil
		case errors.Is(state.err, errVersion):
			return cfg, actionVersion, nil
		case state.err != nil:
			return config.Config{}, actionRun, state.err
		}
		return config.Config{}, actionRun, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, actionRun, &UnknownOptionError{Option: fs.Arg(0)}
	}
	return cfg, actionRun, nil
}
