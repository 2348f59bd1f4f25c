package eventid

import (
	"strconv"
	"sync"
	"time"
)

const Prefix = "EVT-"

// Generator hands out "EVT-<unix millis>" ids. Two calls in the same
// millisecond get consecutive values instead of the same one.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock is used by tests to pin the time source.
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms

	return Prefix + strconv.FormatInt(ms, 10)
}
