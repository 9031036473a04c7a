package colorsep

import (
	"log/slog"

	"github.com/hupe1980/colorsep/index"
	"github.com/hupe1980/colorsep/internal/resource"
)

type options struct {
	workers          int
	indexKind        index.Kind
	metricsCollector MetricsCollector
	logger           *Logger
	resources        *resource.Controller
}

// Option configures a Separator.
type Option func(*options)

// WithWorkers sets the number of goroutines used to map the grid.
// Values below 1 use runtime.GOMAXPROCS(0). The output does not depend on
// the worker count.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithIndexKind selects the nearest-neighbour index. Default: index.KindKDTree.
//
// index.KindFlat scans every candidate per cell and is only practical for
// small targets; it exists to cross-check the tree.
func WithIndexKind(k index.Kind) Option {
	return func(o *options) {
		o.indexKind = k
	}
}

// WithMetricsCollector enables metrics collection for runs.
//
//	metrics := &colorsep.BasicMetricsCollector{}
//	sep := colorsep.New(colorsep.WithMetricsCollector(metrics))
//	// ... run separations ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithResourceController reserves the memory a run needs from rc before
// generating candidates. A run that would exceed the controller's memory
// limit fails with a *ConfigError.
func WithResourceController(rc *resource.Controller) Option {
	return func(o *options) {
		o.resources = rc
	}
}

// WithMemoryLimit is a shortcut for a resource controller with only a
// memory limit.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.resources = resource.NewController(resource.Config{MemoryLimitBytes: bytes})
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		indexKind:        index.KindKDTree,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
