package domain

// SpeciesNone is the sentinel species value marking a logically empty slot.
const SpeciesNone = 0

// DefaultBoxSize is the default capacity of a destination box.
const DefaultBoxSize = 30

// ShinyHint expresses a template's shininess requirement.
type ShinyHint int

// Shiny hint values.
const (
	// ShinyNever requests a non-shiny record.
	ShinyNever ShinyHint = iota

	// ShinyStar requests a star shiny.
	ShinyStar

	// ShinySquare requests a square shiny. Square shininess only exists
	// from generation 8 onward.
	ShinySquare
)

// Template is an abstract, possibly-partial description of a desired
// record. Templates are caller-owned and read-only to the engine.
type Template struct {
	// Name is the identifying text used in logs and batch reports.
	Name string

	// Species is the desired species identifier.
	Species int

	// Form is the desired form identifier.
	Form int

	// Shiny is the desired shininess.
	Shiny ShinyHint

	// Ball is the desired container identifier (0 means "any").
	Ball int

	// Generation is the target format generation.
	Generation int

	// Version is the target game version identifier.
	Version int

	// InvalidLines holds free-form text that failed to parse. A template
	// carrying invalid lines must never reach either strategy.
	InvalidLines []string
}

// HasInvalidLines reports whether the template carries unparsed content.
func (t *Template) HasInvalidLines() bool {
	return len(t.InvalidLines) > 0
}

// TemplateFromRecord builds a template describing an existing record.
// The resulting template never carries invalid lines.
func TemplateFromRecord(rec *Record) *Template {
	return &Template{
		Name:       rec.Nickname,
		Species:    rec.Species,
		Form:       rec.Form,
		Shiny:      rec.Shiny,
		Ball:       rec.Ball,
		Generation: rec.Generation,
		Version:    rec.Version,
	}
}

// IdentityContext is the ownership/identity metadata stamped onto
// produced records. It is immutable for the duration of one resolution.
type IdentityContext struct {
	// TrainerName is the owning entity's display name.
	TrainerName string

	// TrainerID is the owning entity's numeric identifier.
	TrainerID uint32

	// Language is the identity's language code (e.g. "en").
	Language string

	// Region is the identity's geographic region marker.
	Region string

	// Generation is the format generation the identity belongs to.
	Generation int

	// Version is the game version the identity belongs to.
	Version int
}

// Record is a concrete record instance produced by one of the two
// strategies. It is mutable only by the resolver that created it.
type Record struct {
	Species    int
	Form       int
	Shiny      ShinyHint
	Ball       int
	Generation int
	Version    int

	// Nickname is the record's display name, if any.
	Nickname string

	// Identity fields, stamped by the resolver.
	TrainerName string
	TrainerID   uint32
	Language    string
	Region      string

	// Transient state cleared by the normalizer before box insertion.
	// PartySlot and BoxSlot use -1 for "none".
	StatusCondition int
	PartySlot       int
	BoxSlot         int
}

// Clone returns an independent copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	return &c
}

// ApplyIdentity stamps the identity context's ownership metadata onto
// the record. A nil context leaves the record unchanged.
func (r *Record) ApplyIdentity(id *IdentityContext) {
	if id == nil {
		return
	}
	r.TrainerName = id.TrainerName
	r.TrainerID = id.TrainerID
	r.Language = id.Language
	r.Region = id.Region
}

// Outcome classifies how (or whether) a single resolution succeeded.
// Exactly one Outcome is produced per resolution call; it is never
// upgraded or downgraded after creation.
type Outcome int

// Outcome values.
const (
	// OutcomeFailed means neither strategy was permitted or succeeded.
	OutcomeFailed Outcome = iota

	// OutcomeMatched means the constraint matcher fully satisfied the
	// template.
	OutcomeMatched

	// OutcomeSearched means the fallback searcher produced the record.
	OutcomeSearched
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeSearched:
		return "searched"
	default:
		return "failed"
	}
}

// Resolution pairs a produced record with its outcome classification so
// a record can never be inspected without checking how it was produced.
type Resolution struct {
	// Outcome classifies the resolution.
	Outcome Outcome

	// Record is the produced record. Always non-nil: a failed resolution
	// carries the blank or partially-matched candidate.
	Record *Record
}

// BatchStatus is the terminal classification for a batch import.
type BatchStatus string

// Batch status values.
const (
	// StatusOK means every template was resolved and placed.
	StatusOK BatchStatus = "OK"

	// StatusInsufficientCapacity means the destination had fewer usable
	// slots than templates. The destination is left unmodified.
	StatusInsufficientCapacity BatchStatus = "INSUFFICIENT_CAPACITY"

	// StatusRejectedTemplate means a template carried invalid lines.
	// Slots written before the rejecting template stay written.
	StatusRejectedTemplate BatchStatus = "REJECTED_TEMPLATE"
)

// BatchReport is the result of one batch import call.
type BatchReport struct {
	// BatchID is a unique identifier for log correlation.
	BatchID string

	// Status is the terminal status of the batch.
	Status BatchStatus

	// Requested is the number of templates in the batch.
	Requested int

	// Written holds the slot indices written, in write order.
	Written []int

	// SlowPath holds the names of templates that needed the fallback
	// searcher, in input order. Observability only; it never affects
	// Status.
	SlowPath []string

	// Rejected is the name of the template that aborted the batch, when
	// Status is StatusRejectedTemplate.
	Rejected string
}
