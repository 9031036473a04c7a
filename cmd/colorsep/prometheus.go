package main

import (
	"time"

	"github.com/hupe1980/colorsep"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector implements colorsep.MetricsCollector.
type PrometheusCollector struct {
	registry *prometheus.Registry

	phaseLatency *prometheus.HistogramVec
	combinations prometheus.Gauge
	candidates   prometheus.Gauge
	indexPoints  prometheus.Gauge
	cells        prometheus.Gauge
	workers      prometheus.Gauge
	writes       *prometheus.CounterVec
	bytes        prometheus.Counter
}

var _ colorsep.MetricsCollector = (*PrometheusCollector)(nil)

func NewPrometheusCollector() *PrometheusCollector {
	c := &PrometheusCollector{
		registry: prometheus.NewRegistry(),
		phaseLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "colorsep_phase_duration_seconds",
			Help:    "Duration of separation phases",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"phase", "status"}),
		combinations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "colorsep_combinations",
			Help: "Number of fraction combinations enumerated",
		}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "colorsep_candidates",
			Help: "Number of candidates within the ink limit",
		}),
		indexPoints: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "colorsep_index_points",
			Help: "Number of points in the nearest neighbour index",
		}),
		cells: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "colorsep_lut_cells",
			Help: "Number of 3D LUT cells mapped",
		}),
		workers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "colorsep_workers",
			Help: "Number of mapping workers",
		}),
		writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "colorsep_lut_writes_total",
			Help: "Total LUT files written",
		}, []string{"status"}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "colorsep_lut_written_bytes_total",
			Help: "Total bytes of LUT files written",
		}),
	}

	c.registry.MustRegister(
		c.phaseLatency,
		c.combinations,
		c.candidates,
		c.indexPoints,
		c.cells,
		c.workers,
		c.writes,
		c.bytes,
	)
	return c
}

// Registry returns the registry holding the metrics.
func (c *PrometheusCollector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteFile writes the metrics in the text exposition format, for the
// node exporter textfile collector.
func (c *PrometheusCollector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func (c *PrometheusCollector) RecordGenerate(combinations, candidates int, d time.Duration) {
	c.combinations.Set(float64(combinations))
	c.candidates.Set(float64(candidates))
	c.phaseLatency.WithLabelValues("generate", "success").Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordIndexBuild(points int, d time.Duration, err error) {
	c.indexPoints.Set(float64(points))
	c.phaseLatency.WithLabelValues("index", status(err)).Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordMap(cells, workers int, d time.Duration, err error) {
	c.cells.Set(float64(cells))
	c.workers.Set(float64(workers))
	c.phaseLatency.WithLabelValues("map", status(err)).Observe(d.Seconds())
}

func (c *PrometheusCollector) RecordWrite(bytes int64, d time.Duration, err error) {
	c.writes.WithLabelValues(status(err)).Inc()
	c.bytes.Add(float64(bytes))
	c.phaseLatency.WithLabelValues("write", status(err)).Observe(d.Seconds())
}
