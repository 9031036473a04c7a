package codec

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ErrUnknownCompression is returned for an unsupported compression name.
var ErrUnknownCompression = errors.New("codec: unknown compression")

// Compression selects a stream compression format.
type Compression uint8

const (
	// CompressionNone writes data as-is.
	CompressionNone Compression = iota
	// CompressionZSTD writes a zstd frame (better ratio).
	CompressionZSTD
	// CompressionLZ4 writes an lz4 frame (faster).
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZSTD:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// Ext returns the file suffix of the format, empty for CompressionNone.
func (c Compression) Ext() string {
	switch c {
	case CompressionZSTD:
		return ".zst"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// ParseCompression parses a compression name.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZSTD, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

// SplitExt detects a compression suffix on name and returns the name without
// it.
func SplitExt(name string) (string, Compression) {
	for _, c := range []Compression{CompressionZSTD, CompressionLZ4} {
		if base, ok := strings.CutSuffix(name, c.Ext()); ok && base != "" {
			return base, c
		}
	}
	return name, CompressionNone
}

// NewWriter returns a writer that compresses into w. Level applies to zstd
// (1-22, 0 for the default) and is ignored otherwise. Close flushes the frame
// but does not close w.
func NewWriter(w io.Writer, c Compression, level int) (io.WriteCloser, error) {
	switch c {
	case CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionZSTD:
		opts := []zstd.EOption{}
		if level > 0 {
			opts = append(opts, zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)))
		}
		return zstd.NewWriter(w, opts...)
	case CompressionLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

// NewReader returns a reader that decompresses r.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zstdReadCloser{dec}, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, c)
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// zstdReadCloser adapts Decoder.Close, which returns nothing.
type zstdReadCloser struct{ *zstd.Decoder }

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}
