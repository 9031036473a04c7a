package index

import (
	"fmt"
	"sync"

	"github.com/hupe1980/colorsep/vector"
)

// Builder bulk-loads an index over points. The ID of each point is its
// position in points.
type Builder func(points []vector.Vector3) (Index, error)

var (
	builderMu sync.RWMutex
	builders  = map[Kind]Builder{}
)

// RegisterBuilder registers the builder for an index kind.
//
// Index implementations should call this from an init() function.
func RegisterBuilder(kind Kind, builder Builder) {
	builderMu.Lock()
	defer builderMu.Unlock()
	builders[kind] = builder
}

// Build bulk-loads an index of the given kind.
func Build(kind Kind, points []vector.Vector3) (Index, error) {
	if len(points) == 0 {
		return nil, ErrEmpty
	}
	if uint64(len(points)) >= NoID {
		return nil, fmt.Errorf("index: %d points exceed the id space", len(points))
	}

	builderMu.RLock()
	builder, ok := builders[kind]
	builderMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}

	return builder(points)
}
