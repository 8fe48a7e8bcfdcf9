package usecases

import (
	"context"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// Logger defines the logging interface required by the use cases.
// This abstracts the logger dependency to avoid coupling to a specific
// implementation.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// Resolver turns one template into a concrete record by sequencing the
// two resolution strategies under the gate policy. It implements
// domain.RecordResolver.
//
// The resolver has no recoverable error path of its own: "no result" is
// expressed as domain.OutcomeFailed, and the caller always receives a
// record alongside the classification.
type Resolver struct {
	gate     *StrategyGate
	matcher  domain.Matcher
	searcher domain.Searcher
	forms    domain.FormChecker
	identity domain.IdentityProvider
	factory  domain.RecordFactory
	logger   Logger
}

// NewResolver creates a Resolver with the given dependencies.
// All dependencies are injected to support testing and to keep the
// strategy gate explicit rather than ambient global state.
func NewResolver(
	gate *StrategyGate,
	matcher domain.Matcher,
	searcher domain.Searcher,
	forms domain.FormChecker,
	identity domain.IdentityProvider,
	factory domain.RecordFactory,
	log Logger,
) *Resolver {
	return &Resolver{
		gate:     gate,
		matcher:  matcher,
		searcher: searcher,
		forms:    forms,
		identity: identity,
		factory:  factory,
		logger:   log,
	}
}

// Resolve executes the strategy policy for one template:
//
//  1. Templates carrying invalid lines never reach either strategy and
//     fail immediately with a blank record.
//  2. If permitted, the constraint matcher runs against a fresh blank.
//     A fully satisfied candidate is stamped and returned; the searcher
//     is never consulted.
//  3. An unsatisfied candidate is still returned (not discarded) when
//     the searcher is disabled, so callers can inspect partial progress.
//  4. Otherwise the fallback searcher runs with a reset-form hint and a
//     derived identity context, and its result is stamped and returned.
func (r *Resolver) Resolve(ctx context.Context, tmpl *domain.Template, identity *domain.IdentityContext) *domain.Resolution {
	if tmpl.HasInvalidLines() {
		r.logger.Warn(ctx, "template rejected before dispatch", map[string]interface{}{
			"template":      tmpl.Name,
			"invalid_lines": len(tmpl.InvalidLines),
		})
		return &domain.Resolution{
			Outcome: domain.OutcomeFailed,
			Record:  r.factory.NewBlank(identity.Generation, identity.Version),
		}
	}

	policy := r.gate.Snapshot()

	if policy.MatcherEnabled {
		blank := r.factory.NewBlank(identity.Generation, identity.Version)
		candidate, satisfied := r.matcher.Match(ctx, blank, tmpl)
		if satisfied {
			stamp := r.identity.ForRecord(candidate, identity)
			candidate.ApplyIdentity(stamp)
			r.logger.Debug(ctx, "template satisfied by matcher", map[string]interface{}{
				"template": tmpl.Name,
				"species":  candidate.Species,
			})
			return &domain.Resolution{Outcome: domain.OutcomeMatched, Record: candidate}
		}

		if !policy.SearchEnabled {
			r.logger.Warn(ctx, "matcher unsatisfied and search disabled", map[string]interface{}{
				"template": tmpl.Name,
			})
			return &domain.Resolution{Outcome: domain.OutcomeFailed, Record: candidate}
		}
	}

	if !policy.SearchEnabled {
		r.logger.Warn(ctx, "both strategies disabled", map[string]interface{}{
			"template": tmpl.Name,
		})
		return &domain.Resolution{
			Outcome: domain.OutcomeFailed,
			Record:  r.factory.NewBlank(identity.Generation, identity.Version),
		}
	}

	blank := r.factory.NewBlank(identity.Generation, identity.Version)

	// The searcher cannot assume an out-of-range form index is
	// meaningful; resetting it avoids searching a provably invalid
	// branch.
	resetForm := r.forms.IsInvalid(tmpl.Species, tmpl.Form, identity.Generation)

	stamp := r.identity.ForRecord(blank, identity)
	result := r.searcher.Search(ctx, blank, tmpl, resetForm, stamp)
	result.ApplyIdentity(stamp)

	r.logger.Info(ctx, "template resolved by fallback search", map[string]interface{}{
		"template":   tmpl.Name,
		"species":    result.Species,
		"reset_form": resetForm,
	})
	return &domain.Resolution{Outcome: domain.OutcomeSearched, Record: result}
}

// Legalize resolves an existing record for callers that have no
// explicit identity context. The identity is derived from the record's
// declared generation and version via the identity provider, then the
// call delegates to Resolve. This path is intentionally separate from
// the batch path, which sources identity from the destination
// collection.
func (r *Resolver) Legalize(ctx context.Context, rec *domain.Record) *domain.Resolution {
	fallback := r.identity.ForVersion(rec.Generation, rec.Version)
	identity := r.identity.ForRecord(rec, fallback)
	return r.Resolve(ctx, domain.TemplateFromRecord(rec), identity)
}
