package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_MaxSpecies(t *testing.T) {
	rules := NewRegistry()

	assert.Equal(t, 151, rules.MaxSpecies(1))
	assert.Equal(t, 898, rules.MaxSpecies(8))
	assert.Equal(t, 1025, rules.MaxSpecies(9))
	assert.Equal(t, 1025, rules.MaxSpecies(0), "unknown generation falls back to the latest ceiling")
}

func TestRegistry_IsInvalid(t *testing.T) {
	tests := []struct {
		name       string
		species    int
		form       int
		generation int
		want       bool
	}{
		{
			name:       "negative form",
			species:    25,
			form:       -1,
			generation: 9,
			want:       true,
		},
		{
			name:       "single-form species form zero",
			species:    1,
			form:       0,
			generation: 9,
			want:       false,
		},
		{
			name:       "single-form species form one",
			species:    1,
			form:       1,
			generation: 9,
			want:       true,
		},
		{
			name:       "multi-form species in range",
			species:    201,
			form:       27,
			generation: 3,
			want:       false,
		},
		{
			name:       "multi-form species out of range",
			species:    201,
			form:       28,
			generation: 3,
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := NewRegistry()
			assert.Equal(t, tt.want, rules.IsInvalid(tt.species, tt.form, tt.generation))
		})
	}
}

func TestRegistry_SquareShinyAvailable(t *testing.T) {
	rules := NewRegistry()

	assert.False(t, rules.SquareShinyAvailable(7))
	assert.True(t, rules.SquareShinyAvailable(8))
	assert.True(t, rules.SquareShinyAvailable(9))
}

func TestRegistry_SpeciesInRange(t *testing.T) {
	rules := NewRegistry()

	assert.True(t, rules.SpeciesInRange(151, 1))
	assert.False(t, rules.SpeciesInRange(152, 1))
	assert.False(t, rules.SpeciesInRange(0, 9), "the sentinel species is never in range")
}
