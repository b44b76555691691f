// Package health runs ordered, user-supplied health probes. Probes execute
// strictly in insertion order and the first failure stops the run, so the
// failing check is always unambiguous. There is no per-probe timeout or
// isolation: a probe that blocks, blocks the whole check.
package health

import (
	"fmt"
	"sync"
)

// CheckFunc is a single health probe. A nil return means healthy.
type CheckFunc func() error

// Result records one executed probe.
type Result struct {
	Name string
	Err  error
}

type check struct {
	name  string
	probe CheckFunc
}

// Checker holds an append-only, ordered list of probes.
type Checker struct {
	mu     sync.Mutex
	checks []check
}

// NewChecker creates an empty health checker.
func NewChecker() *Checker {
	return &Checker{}
}

// AddCheck appends a named probe. Probes are never removed and run in the
// order they were added.
func (c *Checker) AddCheck(name string, probe CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks = append(c.checks, check{name: name, probe: probe})
}

// Check runs every probe in sequence and returns the first failure, wrapped
// with the failing probe's name. Probes after the failure are not invoked.
func (c *Checker) Check() error {
	for _, chk := range c.snapshot() {
		if err := chk.probe(); err != nil {
			return fmt.Errorf("health check %q failed: %w", chk.name, err)
		}
	}
	return nil
}

// Report runs probes in sequence, collecting results up to and including the
// first failure. The bool is true when every probe passed.
func (c *Checker) Report() ([]Result, bool) {
	var results []Result
	for _, chk := range c.snapshot() {
		err := chk.probe()
		results = append(results, Result{Name: chk.name, Err: err})
		if err != nil {
			return results, false
		}
	}
	return results, true
}

// Len reports the number of registered probes.
func (c *Checker) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.checks)
}

// snapshot copies the probe list so checks run without holding the lock.
func (c *Checker) snapshot() []check {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]check, len(c.checks))
	copy(out, c.checks)
	return out
}
