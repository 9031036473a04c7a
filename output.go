package colorsep

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/colorsep/blobstore"
	"github.com/hupe1980/colorsep/codec"
	"github.com/hupe1980/colorsep/internal/hash"
	"github.com/hupe1980/colorsep/lut"
)

// FileInfo describes one written LUT.
type FileInfo struct {
	Name   string `json:"name"`
	Bytes  int64  `json:"bytes"`
	CRC32C uint32 `json:"crc32c"`
}

// WriteOptions configures how LUTs are written.
type WriteOptions struct {
	// Compression is applied to every file unless the output name carries a
	// compression suffix, which wins.
	Compression codec.Compression
	// Level is the zstd level (0 for the default).
	Level int
}

// LUTs returns the output tables in file order: the secondary LUT, then per
// primary its blend and mask LUTs.
func (r *Result) LUTs() ([]*lut.LUT, error) {
	tables := make([]*lut.LUT, 0, 1+2*len(r.Channels))
	sec, err := lut.New(r.Size, r.Secondary)
	if err != nil {
		return nil, err
	}
	tables = append(tables, sec)
	for _, ch := range r.Channels {
		blend, err := lut.New(r.Size, ch.Blend)
		if err != nil {
			return nil, err
		}
		mask, err := lut.New(r.Size, ch.Mask)
		if err != nil {
			return nil, err
		}
		tables = append(tables, blend, mask)
	}
	return tables, nil
}

// OutputNames returns the blob names WriteLUTs uses for name.
func OutputNames(name string, primaries int, comp codec.Compression) []string {
	base, suffix := codec.SplitExt(name)
	if suffix != codec.CompressionNone {
		comp = suffix
	}
	names := lut.OutputNames(base, primaries)
	for i := range names {
		names[i] += comp.Ext()
	}
	return names
}

type aborter interface {
	Abort() error
}

// Write stores the LUTs of r in store. name is the secondary LUT; the
// per-primary LUTs are placed next to it (see lut.OutputNames).
func (s *Separator) Write(ctx context.Context, store blobstore.BlobStore, name string, r *Result, optFns ...func(*WriteOptions)) ([]FileInfo, error) {
	var opts WriteOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	tables, err := r.LUTs()
	if err != nil {
		return nil, err
	}
	_, suffix := codec.SplitExt(name)
	if suffix != codec.CompressionNone {
		opts.Compression = suffix
	}
	names := OutputNames(name, len(r.Channels), opts.Compression)

	files := make([]FileInfo, 0, len(tables))
	for i, t := range tables {
		start := time.Now()
		info, err := writeLUT(ctx, store, names[i], t, opts)
		s.opts.metricsCollector.RecordWrite(info.Bytes, time.Since(start), err)
		s.opts.logger.LogWrite(ctx, names[i], info.Bytes, err)
		if err != nil {
			return files, fmt.Errorf("write %s: %w", names[i], err)
		}
		files = append(files, info)
	}
	return files, nil
}

// WriteLUTs writes r with a default Separator.
func WriteLUTs(ctx context.Context, store blobstore.BlobStore, name string, r *Result, optFns ...func(*WriteOptions)) ([]FileInfo, error) {
	return New().Write(ctx, store, name, r, optFns...)
}

func writeLUT(ctx context.Context, store blobstore.BlobStore, name string, t *lut.LUT, opts WriteOptions) (FileInfo, error) {
	info := FileInfo{Name: name}

	wb, err := store.Create(ctx, name)
	if err != nil {
		return info, err
	}
	fail := func(err error) (FileInfo, error) {
		if a, ok := wb.(aborter); ok {
			_ = a.Abort()
		} else {
			_ = wb.Close()
		}
		return info, err
	}

	sum := hash.NewSumWriter(wb)
	cw, err := codec.NewWriter(sum, opts.Compression, opts.Level)
	if err != nil {
		return fail(err)
	}
	if err := lut.Encode(cw, t); err != nil {
		_ = cw.Close()
		return fail(err)
	}
	if err := cw.Close(); err != nil {
		return fail(err)
	}
	if err := wb.Close(); err != nil {
		return info, err
	}

	info.Bytes = sum.Count()
	info.CRC32C = sum.Sum32()
	return info, nil
}
