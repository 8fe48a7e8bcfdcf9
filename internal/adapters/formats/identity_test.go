package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

func TestIdentitySource_ForVersion(t *testing.T) {
	source := NewIdentitySource()

	identity := source.ForVersion(9, 51)

	require.NotNil(t, identity)
	assert.Equal(t, DefaultTrainerName, identity.TrainerName)
	assert.Equal(t, uint32(DefaultTrainerID), identity.TrainerID)
	assert.Equal(t, DefaultLanguage, identity.Language)
	assert.Equal(t, 9, identity.Generation)
	assert.Equal(t, 51, identity.Version)
}

func TestIdentitySource_ForRecord(t *testing.T) {
	fallback := &domain.IdentityContext{TrainerName: "Fallback", Generation: 8}

	tests := []struct {
		name     string
		rec      *domain.Record
		fallback *domain.IdentityContext
		wantName string
	}{
		{
			name:     "saved identity preferred",
			rec:      &domain.Record{TrainerName: "Saved", TrainerID: 99, Generation: 9},
			fallback: fallback,
			wantName: "Saved",
		},
		{
			name:     "unresolvable record uses fallback",
			rec:      &domain.Record{Generation: 9},
			fallback: fallback,
			wantName: "Fallback",
		},
		{
			name:     "nil fallback derives default",
			rec:      &domain.Record{Generation: 9},
			wantName: DefaultTrainerName,
		},
		{
			name:     "nil record and fallback",
			wantName: DefaultTrainerName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewIdentitySource()

			identity := source.ForRecord(tt.rec, tt.fallback)

			require.NotNil(t, identity)
			assert.Equal(t, tt.wantName, identity.TrainerName)
		})
	}
}
