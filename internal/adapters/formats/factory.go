package formats

import "github.com/Koi-3088/PKHeX-Plugins/internal/domain"

// BlankFactory materializes template-less starting records.
// It implements domain.RecordFactory.
type BlankFactory struct{}

// NewBlankFactory creates a BlankFactory.
func NewBlankFactory() *BlankFactory {
	return &BlankFactory{}
}

// NewBlank returns a fresh record for the target format. Blank records
// carry the format generation/version and the default language, and
// hold no party or box position.
func (f *BlankFactory) NewBlank(generation, version int) *domain.Record {
	return &domain.Record{
		Generation: generation,
		Version:    version,
		Language:   DefaultLanguage,
		PartySlot:  -1,
		BoxSlot:    -1,
	}
}

// Normalizer clears transient state from a record before insertion into
// a collection. It implements domain.Normalizer.
type Normalizer struct{}

// NewNormalizer creates a Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns a copy of the record with battle state and slot
// position metadata cleared. The operation is idempotent.
func (n *Normalizer) Normalize(rec *domain.Record) *domain.Record {
	if rec == nil {
		return nil
	}
	c := rec.Clone()
	c.StatusCondition = 0
	c.PartySlot = -1
	c.BoxSlot = -1
	return c
}
