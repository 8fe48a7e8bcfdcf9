// Package domain defines the core business entities and interfaces for
// the auto-legalization engine. This package contains no external
// dependencies and represents the innermost layer of the CLEAN
// architecture.
package domain

import (
	"context"
	"errors"
)

// Domain errors for template loading.
var (
	// ErrTemplateFileNotFound indicates the template file does not exist.
	ErrTemplateFileNotFound = errors.New("template file not found")

	// ErrTemplateFileInvalid indicates the template file could not be decoded.
	ErrTemplateFileInvalid = errors.New("template file is not valid YAML")

	// ErrNoTemplates indicates the template file contains no templates.
	ErrNoTemplates = errors.New("template file contains no templates")
)

// Collection is an ordered, fixed-length sequence of record slots with
// an embedded owner identity. A slot is logically empty when it holds no
// record or a record with the SpeciesNone sentinel. The slot allocator
// only reads a Collection; only the batch importer writes into it.
type Collection interface {
	// Len returns the number of slots.
	Len() int

	// Occupied reports whether the slot at index i holds a record with a
	// real species. Out-of-range indices are never occupied.
	Occupied(i int) bool

	// At returns the record at index i, or nil if empty or out of range.
	At(i int) *Record

	// Put writes a record into the slot at index i. Out-of-range writes
	// are ignored.
	Put(i int, rec *Record)

	// Identity returns the collection's embedded owner identity.
	Identity() *IdentityContext
}

// Matcher is the fast constraint-matching strategy. It must be
// side-effect-free with respect to any Collection.
type Matcher interface {
	// Match attempts to satisfy the template against a freshly derived
	// blank record. It returns the candidate record and whether every
	// template requirement was fully satisfied. The candidate is
	// returned even when unsatisfied so callers can inspect partial
	// progress.
	Match(ctx context.Context, blank *Record, tmpl *Template) (*Record, bool)
}

// Searcher is the slow exhaustive/heuristic fallback strategy. It
// always returns some record; the ctx parameter is the cancellation
// hook for implementations whose search is unbounded.
type Searcher interface {
	// Search produces a record for the template. When resetForm is true
	// the template's form identifier is provably invalid and must not be
	// trusted as a search branch.
	Search(ctx context.Context, blank *Record, tmpl *Template, resetForm bool, identity *IdentityContext) *Record
}

// FormChecker reports whether a form identifier is invalid or
// unspecified for a species in a given generation.
type FormChecker interface {
	IsInvalid(species, form, generation int) bool
}

// IdentityProvider derives identity contexts for record stamping.
type IdentityProvider interface {
	// ForVersion derives a default identity for the given generation and
	// game version.
	ForVersion(generation, version int) *IdentityContext

	// ForRecord derives an identity from the record's saved ownership
	// metadata, preferring it over the fallback context when resolvable.
	ForRecord(rec *Record, fallback *IdentityContext) *IdentityContext
}

// RecordFactory materializes blank records for a target format.
type RecordFactory interface {
	NewBlank(generation, version int) *Record
}

// Normalizer performs idempotent cleanup of a record before insertion
// into a collection.
type Normalizer interface {
	Normalize(rec *Record) *Record
}

// RecordResolver resolves a single template into a classified record.
type RecordResolver interface {
	// Resolve executes the strategy policy for one template. The caller
	// always receives a record and a classification, never an error.
	Resolve(ctx context.Context, tmpl *Template, identity *IdentityContext) *Resolution

	// Legalize resolves an existing record without an explicit identity
	// context, deriving one from the record's declared format.
	Legalize(ctx context.Context, rec *Record) *Resolution
}

// BatchImporter places many resolved records into a collection.
type BatchImporter interface {
	ImportBatch(ctx context.Context, templates []*Template, col Collection, startIndex int, overwrite bool) *BatchReport
}

// TemplateSource loads an owner identity and an ordered template list
// from an input source.
type TemplateSource interface {
	Load(ctx context.Context) (*IdentityContext, []*Template, error)

	// Close releases any resources held by the source.
	Close() error
}

// ReportWriter writes a batch report to an output destination.
type ReportWriter interface {
	WriteReport(report *BatchReport) error
}
