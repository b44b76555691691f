// Package metrics provides an in-memory metrics collector with named
// counters and gauges and a JSON snapshot export. Metrics are never evicted;
// the name space is expected to stay small and fixed.
package metrics

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/chybatronik/goServiceKit/pkg/errors"
)

// Collector stores counters and gauges under independent locks. A snapshot
// locks each map in turn, so a write landing between the two reads is
// accepted rather than serialized away.
type Collector struct {
	countersMu sync.Mutex
	counters   map[string]uint64

	gaugesMu sync.Mutex
	gauges   map[string]float64
}

// Snapshot is the exported form of the collector's state.
type Snapshot struct {
	Counters  map[string]uint64  `json:"counters"`
	Gauges    map[string]float64 `json:"gauges"`
	Timestamp int64              `json:"timestamp"`
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{
		counters: make(map[string]uint64),
		gauges:   make(map[string]float64),
	}
}

// IncrementCounter adds delta to the named counter, creating it at zero when
// absent. Counters only grow; uint64 wraparound on overflow is accepted.
func (c *Collector) IncrementCounter(name string, delta uint64) {
	c.countersMu.Lock()
	defer c.countersMu.Unlock()
	c.counters[name] += delta
}

// SetGauge overwrites the named gauge with value.
func (c *Collector) SetGauge(name string, value float64) {
	c.gaugesMu.Lock()
	defer c.gaugesMu.Unlock()
	c.gauges[name] = value
}

// Counter returns the named counter's value, zero when absent.
func (c *Collector) Counter(name string) uint64 {
	c.countersMu.Lock()
	defer c.countersMu.Unlock()
	return c.counters[name]
}

// Gauge returns the named gauge's value; the bool is false when the gauge was
// never set.
func (c *Collector) Gauge(name string) (float64, bool) {
	c.gaugesMu.Lock()
	defer c.gaugesMu.Unlock()
	value, ok := c.gauges[name]
	return value, ok
}

// Snapshot copies the current state together with the current Unix timestamp.
func (c *Collector) Snapshot() Snapshot {
	snap := Snapshot{
		Counters:  make(map[string]uint64),
		Gauges:    make(map[string]float64),
		Timestamp: time.Now().Unix(),
	}

	c.countersMu.Lock()
	for name, value := range c.counters {
		snap.Counters[name] = value
	}
	c.countersMu.Unlock()

	c.gaugesMu.Lock()
	for name, value := range c.gauges {
		snap.Gauges[name] = value
	}
	c.gaugesMu.Unlock()

	return snap
}

// SnapshotJSON serializes the snapshot. A marshal failure on this well-formed
// structure is unexpected and classified as critical.
func (c *Collector) SnapshotJSON() (string, error) {
	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		return "", errors.WrapSerialization(err)
	}
	return string(data), nil
}
