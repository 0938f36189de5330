package searcher

import (
	"sync/atomic"
	"time"
)

// Metrics summarizes one search.
type Metrics struct {
	SearchID       string
	StartTime      time.Time
	Duration       time.Duration
	Iterations     int64
	CappedRollouts int64
	TerminalVisits int64
	TreeReused     bool
}

// Collector receives search events. Implementations must tolerate calls
// from multiple goroutines while a parallel search runs.
type Collector interface {
	Start(searchID string)
	AddIteration()
	AddCappedRollout()
	AddTerminalVisit()
	ReuseTree()
	Complete() Metrics
}

type collector struct {
	searchID       string
	startTime      time.Time
	duration       time.Duration
	iterations     atomic.Int64
	cappedRollouts atomic.Int64
	terminalVisits atomic.Int64
	treeReused     atomic.Bool
}

// NewCollector returns a collector backed by atomic counters. Start resets
// it, so one collector can serve a whole sequence of searches.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(searchID string) {
	c.searchID = searchID
	c.startTime = time.Now()
	c.duration = 0
	c.iterations.Store(0)
	c.cappedRollouts.Store(0)
	c.terminalVisits.Store(0)
	c.treeReused.Store(false)
}

func (c *collector) AddIteration() {
	c.iterations.Add(1)
}

func (c *collector) AddCappedRollout() {
	c.cappedRollouts.Add(1)
}

func (c *collector) AddTerminalVisit() {
	c.terminalVisits.Add(1)
}

func (c *collector) ReuseTree() {
	c.treeReused.Store(true)
}

// Complete freezes the search duration on first call and reports the
// totals. Later calls return the same metrics.
func (c *collector) Complete() Metrics {
	if c.duration == 0 {
		c.duration = time.Since(c.startTime)
	}
	return Metrics{
		SearchID:       c.searchID,
		StartTime:      c.startTime,
		Duration:       c.duration,
		Iterations:     c.iterations.Load(),
		CappedRollouts: c.cappedRollouts.Load(),
		TerminalVisits: c.terminalVisits.Load(),
		TreeReused:     c.treeReused.Load(),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing, for searches
// where even atomic counters are unwelcome.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(string)      {}
func (dummyCollector) AddIteration()     {}
func (dummyCollector) AddCappedRollout() {}
func (dummyCollector) AddTerminalVisit() {}
func (dummyCollector) ReuseTree()        {}
func (dummyCollector) Complete() Metrics { return Metrics{} }
