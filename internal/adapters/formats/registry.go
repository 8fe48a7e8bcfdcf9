// Package formats provides the reference format-rule collaborators:
// the rule registry consulted by both strategies, the identity-context
// provider, the blank-record factory, and the record normalizer.
//
// The registry is a reference implementation, not the format's
// authority: legality rules proper belong to the surrounding
// application.
package formats

import "github.com/Koi-3088/PKHeX-Plugins/internal/domain"

// DefaultBall is the standard container identifier, legal in every
// generation.
const DefaultBall = 4

// maxSpeciesByGeneration maps a format generation to its species
// ceiling.
var maxSpeciesByGeneration = map[int]int{
	1: 151,
	2: 251,
	3: 386,
	4: 493,
	5: 649,
	6: 721,
	7: 809,
	8: 898,
	9: 1025,
}

// maxBallByGeneration maps a format generation to its container
// identifier ceiling.
var maxBallByGeneration = map[int]int{
	1: 4,
	2: 7,
	3: 12,
	4: 16,
	5: 25,
	6: 25,
	7: 26,
	8: 26,
	9: 26,
}

// formCounts lists species with more than one form. Species absent from
// the table have a single form (index 0).
var formCounts = map[int]int{
	201: 28, // one form per letter glyph
	351: 4,
	386: 4,
	412: 3,
	422: 2,
	479: 6,
	550: 3,
	585: 4,
	666: 20,
	676: 10,
	710: 4,
	741: 4,
	774: 14,
	849: 2,
	925: 2,
}

const latestGeneration = 9

// Registry answers format-rule queries for the reference generations.
// It implements domain.FormChecker.
type Registry struct{}

// NewRegistry creates a Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// MaxSpecies returns the species ceiling for the generation. Unknown or
// unspecified generations use the latest known ceiling.
func (g *Registry) MaxSpecies(generation int) int {
	if max, ok := maxSpeciesByGeneration[generation]; ok {
		return max
	}
	return maxSpeciesByGeneration[latestGeneration]
}

// MaxBall returns the container identifier ceiling for the generation.
func (g *Registry) MaxBall(generation int) int {
	if max, ok := maxBallByGeneration[generation]; ok {
		return max
	}
	return maxBallByGeneration[latestGeneration]
}

// FormCount returns the number of forms for the species. Generations
// before the species existed still report at least one form; the
// species-range check is a separate concern.
func (g *Registry) FormCount(species, generation int) int {
	if count, ok := formCounts[species]; ok {
		return count
	}
	return 1
}

// IsInvalid reports whether the form identifier is invalid or
// unspecified for the species in the given generation.
func (g *Registry) IsInvalid(species, form, generation int) bool {
	if form < 0 {
		return true
	}
	return form >= g.FormCount(species, generation)
}

// SquareShinyAvailable reports whether the generation distinguishes
// square shininess.
func (g *Registry) SquareShinyAvailable(generation int) bool {
	return generation >= 8
}

// SpeciesInRange reports whether the species identifier exists in the
// generation.
func (g *Registry) SpeciesInRange(species, generation int) bool {
	return species > domain.SpeciesNone && species <= g.MaxSpecies(generation)
}
