// Package stats counts processed elements and produced features for
// progress reporting. Counters are safe for concurrent workers.
package stats

import (
	"fmt"
	"sync/atomic"
	"time"
)

type Counter struct {
	start    time.Time
	nodes    int64
	ways     int64
	skipped  int64
	features int64
}

func NewCounter() *Counter {
	return &Counter{start: time.Now()}
}

func (c *Counter) AddNode() {
	atomic.AddInt64(&c.nodes, 1)
}

func (c *Counter) AddWay() {
	atomic.AddInt64(&c.ways, 1)
}

func (c *Counter) AddSkipped() {
	atomic.AddInt64(&c.skipped, 1)
}

func (c *Counter) AddFeatures(n int) {
	atomic.AddInt64(&c.features, int64(n))
}

func (c *Counter) Nodes() int64    { return atomic.LoadInt64(&c.nodes) }
func (c *Counter) Ways() int64     { return atomic.LoadInt64(&c.ways) }
func (c *Counter) Skipped() int64  { return atomic.LoadInt64(&c.skipped) }
func (c *Counter) Features() int64 { return atomic.LoadInt64(&c.features) }

// Eps is the overall element rate since the counter was created.
func (c *Counter) Eps() float64 {
	elapsed := time.Since(c.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(c.Nodes()+c.Ways()) / elapsed
}

func (c *Counter) Report() string {
	return fmt.Sprintf("%d nodes, %d ways -> %d features (%d skipped, %.0f elements/s)",
		c.Nodes(), c.Ways(), c.Features(), c.Skipped(), c.Eps())
}
