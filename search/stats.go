package search

import (
	"fmt"
	"time"
)

// Stats accumulates counters for one search. Attach one to an engine before
// calling Search; a nil Stats disables collection.
type Stats struct {
	Nodes  int
	Leaves int
	Prunes int
	Start  time.Time
}

// NewStats returns a Stats with the clock already running.
func NewStats() *Stats {
	return &Stats{Start: time.Now()}
}

func (s *Stats) countNode() {
	if s != nil {
		s.Nodes++
	}
}

func (s *Stats) countLeaf() {
	if s != nil {
		s.Leaves++
	}
}

func (s *Stats) countPrune() {
	if s != nil {
		s.Prunes++
	}
}

// Elapsed returns the time since the stats were created.
func (s *Stats) Elapsed() time.Duration {
	if s == nil || s.Start.IsZero() {
		return 0
	}
	return time.Since(s.Start)
}

func (s *Stats) String() string {
	if s == nil {
		return "search: no stats"
	}
	return fmt.Sprintf("nodes=%d leaves=%d prunes=%d elapsed=%s",
		s.Nodes, s.Leaves, s.Prunes, s.Elapsed().Round(time.Microsecond))
}
