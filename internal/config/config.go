// Package config holds the run configuration of the colorsep command: its
// defaults, TOML and YAML config files, and validation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/colorspace"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for config files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("config: unknown file format")

// DefaultScale is the input range of primary components.
const DefaultScale = 255

// Log configures logging.
type Log struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // text or json
}

// Config is a full run configuration. Zero-valued fields in a file keep
// their defaults only when they are absent; Load decodes over Default.
type Config struct {
	Profile string `toml:"profile" yaml:"profile"`
	Output  string `toml:"output" yaml:"output"`

	// Colors are the primaries in input units (see Scale).
	Colors [][3]float32 `toml:"colors" yaml:"colors"`
	// Scale is the value of a full-intensity component. Default: 255.
	Scale float32 `toml:"scale" yaml:"scale"`

	Size     int     `toml:"size" yaml:"size"`
	Target   int     `toml:"target" yaml:"target"`
	InkLimit float64 `toml:"ink_limit" yaml:"ink_limit"`

	Workers int    `toml:"workers" yaml:"workers"`
	Index   string `toml:"index" yaml:"index"`

	MemoryLimit int64 `toml:"memory_limit" yaml:"memory_limit"` // bytes, 0 for none
	IOLimit     int64 `toml:"io_limit" yaml:"io_limit"`         // bytes/s, 0 for none

	Compression string `toml:"compression" yaml:"compression"`
	Level       int    `toml:"level" yaml:"level"`

	Report  string `toml:"report" yaml:"report"`   // JSON run summary, "-" for stdout
	Metrics string `toml:"metrics" yaml:"metrics"` // Prometheus text file
	Log     Log    `toml:"log" yaml:"log"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Scale:    DefaultScale,
		Size:     colorsep.DefaultSize,
		Target:   colorsep.DefaultTarget,
		InkLimit: math.Inf(1),
		Index:    index.KindKDTree.String(),
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) file over the defaults.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	if err := Decode(&cfg, filepath.Ext(path), data); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode decodes data in the format named by ext into cfg.
func Decode(cfg *Config, ext string, data []byte) error {
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
}

// Validate checks the values the separation itself does not check.
func (c Config) Validate() error {
	switch {
	case c.Profile == "":
		return colorsep.NewConfigError("profile", "no ICC profile was specified")
	case c.Output == "":
		return colorsep.NewConfigError("output", "no output file was specified")
	case len(c.Colors) == 0:
		return colorsep.NewConfigError("primaries", "no primary colors were specified")
	case !(c.Scale > 0) || math.IsInf(float64(c.Scale), 0):
		return colorsep.NewConfigError("scale", "must be a positive number")
	case c.Size < colorsep.MinSize:
		return colorsep.NewConfigError("size", "must be an integer greater than or equal to 2")
	case c.Target < 1:
		return colorsep.NewConfigError("target", "must be a positive integer")
	case c.InkLimit < 0 || math.IsNaN(c.InkLimit):
		return colorsep.NewConfigError("ink limit", "must be a non-negative number")
	case c.Workers < 0:
		return colorsep.NewConfigError("workers", "must not be negative")
	case c.MemoryLimit < 0:
		return colorsep.NewConfigError("memory limit", "must not be negative")
	case c.IOLimit < 0:
		return colorsep.NewConfigError("io limit", "must not be negative")
	}
	if _, err := index.ParseKind(c.Index); err != nil {
		return colorsep.NewConfigError("index", err.Error())
	}
	if _, err := codec.ParseCompression(c.Compression); err != nil {
		return colorsep.NewConfigError("compression", err.Error())
	}
	if _, err := c.SlogLevel(); err != nil {
		return colorsep.NewConfigError("log level", err.Error())
	}
	if f := strings.ToLower(c.Log.Format); f != "" && f != "text" && f != "json" {
		return colorsep.NewConfigError("log format", fmt.Sprintf("%q is neither text nor json", c.Log.Format))
	}
	return nil
}

// Primaries returns the colours scaled to the unit range.
func (c Config) Primaries() []vector.Vector3 {
	out := make([]vector.Vector3, len(c.Colors))
	for i, col := range c.Colors {
		out[i] = vector.Vector3(col).Div(c.Scale)
	}
	return out
}

// Setup builds the separation setup for transform t.
func (c Config) Setup(t colorspace.Transform) colorsep.Setup {
	return colorsep.Setup{
		Primaries: c.Primaries(),
		Size:      c.Size,
		Target:    c.Target,
		InkLimit:  float32(c.InkLimit),
		Transform: t,
	}
}

// IndexKind returns the configured index kind.
func (c Config) IndexKind() index.Kind {
	k, err := index.ParseKind(c.Index)
	if err != nil {
		return index.KindKDTree
	}
	return k
}

// CompressionCodec returns the configured compression.
func (c Config) CompressionCodec() codec.Compression {
	comp, _ := codec.ParseCompression(c.Compression)
	return comp
}

// SlogLevel parses the configured log level.
func (c Config) SlogLevel() (slog.Level, error) {
	var l slog.Level
	if c.Log.Level == "" {
		return slog.LevelWarn, nil
	}
	err := l.UnmarshalText([]byte(c.Log.Level))
	return l, err
}

// Logger builds the configured logger writing to w.
func (c Config) Logger(w io.Writer) *colorsep.Logger {
	level, _ := c.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Log.Format, "json") {
		return colorsep.NewLogger(slog.NewJSONHandler(w, opts))
	}
	return colorsep.NewLogger(slog.NewTextHandler(w, opts))
}
