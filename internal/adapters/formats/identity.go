package formats

import "github.com/Koi-3088/PKHeX-Plugins/internal/domain"

// Default identity values used when neither the record nor the caller
// supplies ownership metadata.
const (
	DefaultTrainerName = "PKHeX"
	DefaultTrainerID   = 12345
	DefaultLanguage    = "en"
	DefaultRegion      = "NA"
)

// IdentitySource derives identity contexts for record stamping.
// It implements domain.IdentityProvider.
type IdentitySource struct{}

// NewIdentitySource creates an IdentitySource.
func NewIdentitySource() *IdentitySource {
	return &IdentitySource{}
}

// ForVersion derives a default identity for the given generation and
// game version.
func (s *IdentitySource) ForVersion(generation, version int) *domain.IdentityContext {
	return &domain.IdentityContext{
		TrainerName: DefaultTrainerName,
		TrainerID:   DefaultTrainerID,
		Language:    DefaultLanguage,
		Region:      DefaultRegion,
		Generation:  generation,
		Version:     version,
	}
}

// ForRecord prefers the record's saved ownership metadata over the
// fallback context. A record with no trainer name is not resolvable, in
// which case the fallback is returned as-is (or a version-derived
// default when the fallback is nil).
func (s *IdentitySource) ForRecord(rec *domain.Record, fallback *domain.IdentityContext) *domain.IdentityContext {
	if rec != nil && rec.TrainerName != "" {
		return &domain.IdentityContext{
			TrainerName: rec.TrainerName,
			TrainerID:   rec.TrainerID,
			Language:    rec.Language,
			Region:      rec.Region,
			Generation:  rec.Generation,
			Version:     rec.Version,
		}
	}
	if fallback != nil {
		return fallback
	}
	if rec != nil {
		return s.ForVersion(rec.Generation, rec.Version)
	}
	return s.ForVersion(0, 0)
}
