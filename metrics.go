package colorsep

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting run metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordGenerate is called after candidate generation with the number of
	// combinations enumerated and candidates kept.
	RecordGenerate(combinations, candidates int, duration time.Duration)

	// RecordIndexBuild is called after each index build.
	RecordIndexBuild(points int, duration time.Duration, err error)

	// RecordMap is called after the parallel mapping phase.
	RecordMap(cells, workers int, duration time.Duration, err error)

	// RecordWrite is called after each output file.
	RecordWrite(bytes int64, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGenerate(int, int, time.Duration)     {}
func (NoopMetricsCollector) RecordIndexBuild(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMap(int, int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordWrite(int64, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	Runs          atomic.Int64
	Combinations  atomic.Int64
	Candidates    atomic.Int64
	GenerateNanos atomic.Int64
	IndexBuilds   atomic.Int64
	IndexErrors   atomic.Int64
	IndexNanos    atomic.Int64
	CellsMapped   atomic.Int64
	MapErrors     atomic.Int64
	MapNanos      atomic.Int64
	FilesWritten  atomic.Int64
	BytesWritten  atomic.Int64
	WriteErrors   atomic.Int64
	WriteNanos    atomic.Int64
}

// RecordGenerate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGenerate(combinations, candidates int, duration time.Duration) {
	b.Runs.Add(1)
	b.Combinations.Add(int64(combinations))
	b.Candidates.Add(int64(candidates))
	b.GenerateNanos.Add(duration.Nanoseconds())
}

// RecordIndexBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIndexBuild(_ int, duration time.Duration, err error) {
	b.IndexBuilds.Add(1)
	b.IndexNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.IndexErrors.Add(1)
	}
}

// RecordMap implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMap(cells, _ int, duration time.Duration, err error) {
	b.MapNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.MapErrors.Add(1)
		return
	}
	b.CellsMapped.Add(int64(cells))
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int64, duration time.Duration, err error) {
	b.WriteNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.FilesWritten.Add(1)
	b.BytesWritten.Add(bytes)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		Runs:             b.Runs.Load(),
		Combinations:     b.Combinations.Load(),
		Candidates:       b.Candidates.Load(),
		GenerateAvgNanos: avg(b.GenerateNanos.Load(), b.Runs.Load()),
		IndexBuilds:      b.IndexBuilds.Load(),
		IndexErrors:      b.IndexErrors.Load(),
		CellsMapped:      b.CellsMapped.Load(),
		MapErrors:        b.MapErrors.Load(),
		FilesWritten:     b.FilesWritten.Load(),
		BytesWritten:     b.BytesWritten.Load(),
		WriteErrors:      b.WriteErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	Runs             int64
	Combinations     int64
	Candidates       int64
	GenerateAvgNanos int64
	IndexBuilds      int64
	IndexErrors      int64
	CellsMapped      int64
	MapErrors        int64
	FilesWritten     int64
	BytesWritten     int64
	WriteErrors      int64
}
