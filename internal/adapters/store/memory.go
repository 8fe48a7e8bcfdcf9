// Package store provides the concrete destination collection.
package store

import "github.com/Koi-3088/PKHeX-Plugins/internal/domain"

// Box is a fixed-capacity in-memory collection of record slots with an
// embedded owner identity. It implements domain.Collection.
//
// A Box is not safe for concurrent writes; the importer assumes
// exclusive access for the duration of one batch.
type Box struct {
	slots []*domain.Record
	owner domain.IdentityContext
}

// NewBox creates a Box with the given capacity and owner. A
// non-positive size falls back to domain.DefaultBoxSize.
func NewBox(size int, owner domain.IdentityContext) *Box {
	if size <= 0 {
		size = domain.DefaultBoxSize
	}
	return &Box{
		slots: make([]*domain.Record, size),
		owner: owner,
	}
}

// Len returns the number of slots.
func (b *Box) Len() int {
	return len(b.slots)
}

// Occupied reports whether the slot holds a record with a real species.
func (b *Box) Occupied(i int) bool {
	if i < 0 || i >= len(b.slots) {
		return false
	}
	rec := b.slots[i]
	return rec != nil && rec.Species != domain.SpeciesNone
}

// At returns the record at index i, or nil if empty or out of range.
func (b *Box) At(i int) *domain.Record {
	if i < 0 || i >= len(b.slots) {
		return nil
	}
	return b.slots[i]
}

// Put writes a record into the slot at index i. Out-of-range writes are
// ignored.
func (b *Box) Put(i int, rec *domain.Record) {
	if i < 0 || i >= len(b.slots) {
		return
	}
	b.slots[i] = rec
}

// Identity returns a copy of the box's owner identity.
func (b *Box) Identity() *domain.IdentityContext {
	owner := b.owner
	return &owner
}
