package id

import (
	"sync"
	"time"
)

// Generator hands out record ids: the creation time in Unix milliseconds,
// bumped by one when the clock has not advanced since the previous id.
// Ids from one Generator are strictly increasing.
type Generator struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

// NewGenerator returns a Generator reading the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// NewGeneratorWithClock returns a Generator reading now. Used by tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Seed makes the next id greater than floor. Call it with the largest id
// already persisted so reloaded journals never reuse an id.
func (g *Generator) Seed(floor int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if floor > g.last {
		g.last = floor
	}
}

// Next returns a new id.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return ms
}
