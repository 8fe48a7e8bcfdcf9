// Package strategy provides the reference resolution strategies: a
// declarative rule matcher and a heuristic fallback searcher. Both
// consult the format registry and are pure with respect to any
// destination collection.
package strategy

import (
	"context"

	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/formats"
	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// RuleMatcher is the fast declarative strategy. It copies template
// attributes onto a blank record and checks each against the format
// registry. It implements domain.Matcher.
type RuleMatcher struct {
	rules *formats.Registry
}

// NewRuleMatcher creates a RuleMatcher backed by the given registry.
func NewRuleMatcher(rules *formats.Registry) *RuleMatcher {
	return &RuleMatcher{rules: rules}
}

// Match builds a candidate from the template and reports whether every
// template requirement was legal as-given. Illegal attribute hints are
// degraded to legal values where a default exists, so the unsatisfied
// candidate remains inspectable; the species hint is kept verbatim so
// callers can see what was asked for.
func (m *RuleMatcher) Match(_ context.Context, blank *domain.Record, tmpl *domain.Template) (*domain.Record, bool) {
	rec := blank.Clone()
	generation := rec.Generation
	if generation == 0 {
		generation = tmpl.Generation
	}
	satisfied := true

	rec.Nickname = tmpl.Name
	rec.Species = tmpl.Species
	if !m.rules.SpeciesInRange(tmpl.Species, generation) {
		satisfied = false
	}

	if m.rules.IsInvalid(tmpl.Species, tmpl.Form, generation) {
		rec.Form = 0
		satisfied = false
	} else {
		rec.Form = tmpl.Form
	}

	switch {
	case tmpl.Ball <= 0:
		rec.Ball = formats.DefaultBall
	case tmpl.Ball > m.rules.MaxBall(generation):
		rec.Ball = formats.DefaultBall
		satisfied = false
	default:
		rec.Ball = tmpl.Ball
	}

	rec.Shiny = tmpl.Shiny
	if tmpl.Shiny == domain.ShinySquare && !m.rules.SquareShinyAvailable(generation) {
		rec.Shiny = domain.ShinyStar
		satisfied = false
	}

	return rec, satisfied
}
