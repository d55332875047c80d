// Package idgen produces time-derived string identifiers.
package idgen

import (
	"strconv"
	"sync"
	"time"
)

// Generator returns unix-millisecond identifiers that never repeat within
// one process, even when called several times in the same millisecond.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// New creates a Generator backed by time.Now.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock creates a Generator backed by the given clock.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Next returns the next identifier.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id

	return strconv.FormatInt(id, 10)
}
