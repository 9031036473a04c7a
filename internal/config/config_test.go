package config

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/hupe1980/colorsep"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valid() Config {
	c := Default()
	c.Profile = "sRGB"
	c.Output = "out.cube"
	c.Colors = [][3]float32{{102, 51, 153}}
	return c
}

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 64, c.Size)
	assert.Equal(t, 100_000_000, c.Target)
	assert.True(t, math.IsInf(c.InkLimit, 1))
	assert.Equal(t, float32(255), c.Scale)
	assert.Equal(t, index.KindKDTree, c.IndexKind())
	assert.Equal(t, codec.CompressionNone, c.CompressionCodec())
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "run.toml", `
profile = "AdobeRGB1998"
output = "s3://bucket/luts/cmyk.cube"
colors = [[0.0, 174.0, 239.0], [236.0, 0.0, 140.0], [255.0, 242.0, 0.0], [35.0, 31.0, 32.0]]
size = 16
target = 10000
ink_limit = 3.0
index = "flat"
compression = "zstd"

[log]
level = "debug"
format = "json"
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "AdobeRGB1998", c.Profile)
	assert.Len(t, c.Colors, 4)
	assert.Equal(t, 16, c.Size)
	assert.Equal(t, 3.0, c.InkLimit)
	assert.Equal(t, float32(255), c.Scale, "absent keys keep defaults")
	assert.Equal(t, index.KindFlat, c.IndexKind())
	assert.Equal(t, codec.CompressionZSTD, c.CompressionCodec())

	level, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
	assert.NotNil(t, c.Logger(io.Discard))
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "run.yml", `
profile: sRGB
output: out/purple.cube
colors:
  - [0.4, 0.2, 0.6]
scale: 1
ink_limit: .inf
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.True(t, math.IsInf(c.InkLimit, 1))

	s := c.Setup(nil)
	assert.Equal(t, []vector.Vector3{{0.4, 0.2, 0.6}}, s.Primaries)
	assert.Equal(t, 64, s.Size)
}

func TestLoadEmptyYAML(t *testing.T) {
	c, err := Load(write(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(write(t, "run.json", "{}"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(write(t, "run.toml", "colour = 1\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "run.yaml", "colour: 1\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		field string
		edit  func(*Config)
	}{
		{"profile", func(c *Config) { c.Profile = "" }},
		{"output", func(c *Config) { c.Output = "" }},
		{"primaries", func(c *Config) { c.Colors = nil }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"size", func(c *Config) { c.Size = 1 }},
		{"target", func(c *Config) { c.Target = 0 }},
		{"ink limit", func(c *Config) { c.InkLimit = -0.5 }},
		{"ink limit", func(c *Config) { c.InkLimit = math.NaN() }},
		{"workers", func(c *Config) { c.Workers = -1 }},
		{"memory limit", func(c *Config) { c.MemoryLimit = -1 }},
		{"io limit", func(c *Config) { c.IOLimit = -1 }},
		{"index", func(c *Config) { c.Index = "hnsw" }},
		{"compression", func(c *Config) { c.Compression = "brotli" }},
		{"log level", func(c *Config) { c.Log.Level = "loud" }},
		{"log format", func(c *Config) { c.Log.Format = "xml" }},
	}
	require.NoError(t, valid().Validate())

	for _, tt := range tests {
		c := valid()
		tt.edit(&c)
		err := c.Validate()
		require.ErrorIs(t, err, colorsep.ErrInvalidConfig, tt.field)

		var ce *colorsep.ConfigError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, tt.field, ce.Field)
	}
}

func TestPrimariesScale(t *testing.T) {
	c := valid()
	p := c.Primaries()
	require.Len(t, p, 1)
	assert.InDelta(t, 0.4, p[0][0], 1e-6)
	assert.InDelta(t, 0.2, p[0][1], 1e-6)
	assert.InDelta(t, 0.6, p[0][2], 1e-6)
}
