package strategy

import (
	"context"

	"github.com/Koi-3088/PKHeX-Plugins/internal/adapters/formats"
	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// FallbackSearcher is the slow heuristic strategy. Rather than failing
// on an illegal hint it descends toward the nearest legal value, so it
// always yields some record. It implements domain.Searcher.
type FallbackSearcher struct {
	rules *formats.Registry
}

// NewFallbackSearcher creates a FallbackSearcher backed by the given
// registry.
func NewFallbackSearcher(rules *formats.Registry) *FallbackSearcher {
	return &FallbackSearcher{rules: rules}
}

// Search produces a record for the template. Species identifiers above
// the generation ceiling are clamped into range, the form walks
// downward from the hint (or 0 when resetForm) until a valid form is
// found, out-of-range balls fall back to the default, and square shiny
// degrades to star below generation 8. Cancelling ctx stops the form
// descent early and returns the best candidate so far.
func (s *FallbackSearcher) Search(
	ctx context.Context,
	blank *domain.Record,
	tmpl *domain.Template,
	resetForm bool,
	identity *domain.IdentityContext,
) *domain.Record {
	rec := blank.Clone()
	if identity != nil {
		if rec.Generation == 0 {
			rec.Generation = identity.Generation
		}
		if rec.Version == 0 {
			rec.Version = identity.Version
		}
	}
	generation := rec.Generation

	rec.Nickname = tmpl.Name
	rec.Species = tmpl.Species
	if max := s.rules.MaxSpecies(generation); rec.Species > max {
		rec.Species = max
	}
	if rec.Species <= domain.SpeciesNone {
		rec.Species = 1
	}

	form := tmpl.Form
	if resetForm {
		form = 0
	}
	for form > 0 && s.rules.IsInvalid(rec.Species, form, generation) {
		if ctx.Err() != nil {
			break
		}
		form--
	}
	if form < 0 || s.rules.IsInvalid(rec.Species, form, generation) {
		form = 0
	}
	rec.Form = form

	rec.Ball = tmpl.Ball
	if rec.Ball <= 0 || rec.Ball > s.rules.MaxBall(generation) {
		rec.Ball = formats.DefaultBall
	}

	rec.Shiny = tmpl.Shiny
	if rec.Shiny == domain.ShinySquare && !s.rules.SquareShinyAvailable(generation) {
		rec.Shiny = domain.ShinyStar
	}

	return rec
}
