package styled

import (
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// NameGenerator issues component names. Names from one generator never repeat.
type NameGenerator interface {
	Next() string
}

// TimestampNames issues Prefix followed by the current Unix time in
// milliseconds. When the clock has not moved past the last issued value the
// next millisecond is used instead, so names stay unique and increasing.
type TimestampNames struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewTimestampNames returns a generator reading now, or time.Now when nil.
func NewTimestampNames(now func() time.Time) *TimestampNames {
	if now == nil {
		now = time.Now
	}
	return &TimestampNames{now: now}
}

// Next implements NameGenerator.
func (g *TimestampNames) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return Prefix + strconv.FormatInt(ms, 10)
}

// CounterNames issues Prefix followed by 1, 2, 3...
type CounterNames struct {
	n atomic.Int64
}

// Next implements NameGenerator.
func (c *CounterNames) Next() string {
	return Prefix + strconv.FormatInt(c.n.Add(1), 10)
}
