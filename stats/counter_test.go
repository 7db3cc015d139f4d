package stats

import (
	"strings"
	"sync"
	"testing"
)

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter()
	wg := sync.WaitGroup{}
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c.AddNode()
				c.AddWay()
				c.AddFeatures(2)
			}
		}()
	}
	wg.Wait()

	if c.Nodes() != 8000 || c.Ways() != 8000 || c.Features() != 16000 {
		t.Fatal(c.Report())
	}
	if !strings.Contains(c.Report(), "8000 nodes") {
		t.Fatal(c.Report())
	}
}
