// Package usecases contains the application business logic.
// This package orchestrates domain entities and interfaces to fulfill
// the resolution and batch import use cases.
package usecases

import "sync/atomic"

// StrategyGate holds the process-wide switches controlling which
// resolution strategies may run. Both switches default to enabled and
// both may be disabled simultaneously; no validation is applied.
//
// The flags are atomics so the gate may be flipped while other
// goroutines resolve records. The resolver snapshots the gate on every
// call, so a change takes effect on the next resolution.
type StrategyGate struct {
	matcher atomic.Bool
	search  atomic.Bool
}

// Policy is a point-in-time snapshot of the gate flags.
type Policy struct {
	// MatcherEnabled permits the fast constraint-matching strategy.
	MatcherEnabled bool

	// SearchEnabled permits the slow fallback search strategy.
	SearchEnabled bool
}

// NewStrategyGate creates a gate with both strategies enabled.
func NewStrategyGate() *StrategyGate {
	g := &StrategyGate{}
	g.matcher.Store(true)
	g.search.Store(true)
	return g
}

// SetMatcherEnabled toggles the constraint-matching strategy.
func (g *StrategyGate) SetMatcherEnabled(enabled bool) {
	g.matcher.Store(enabled)
}

// SetSearchEnabled toggles the fallback search strategy.
func (g *StrategyGate) SetSearchEnabled(enabled bool) {
	g.search.Store(enabled)
}

// Snapshot returns the current policy.
func (g *StrategyGate) Snapshot() Policy {
	return Policy{
		MatcherEnabled: g.matcher.Load(),
		SearchEnabled:  g.search.Load(),
	}
}
