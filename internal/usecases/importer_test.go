package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// fakeResolver implements domain.RecordResolver with scripted outcomes
// keyed by template name. Unknown names resolve as matched.
type fakeResolver struct {
	outcomes map[string]domain.Outcome
	calls    int
}

func (r *fakeResolver) Resolve(_ context.Context, tmpl *domain.Template, identity *domain.IdentityContext) *domain.Resolution {
	r.calls++
	outcome, ok := r.outcomes[tmpl.Name]
	if !ok {
		outcome = domain.OutcomeMatched
	}
	rec := &domain.Record{
		Species:         tmpl.Species,
		Nickname:        tmpl.Name,
		StatusCondition: 7, // transient state the normalizer must clear
	}
	rec.ApplyIdentity(identity)
	return &domain.Resolution{Outcome: outcome, Record: rec}
}

func (r *fakeResolver) Legalize(ctx context.Context, rec *domain.Record) *domain.Resolution {
	return r.Resolve(ctx, domain.TemplateFromRecord(rec), nil)
}

// fakeNormalizer implements domain.Normalizer for testing.
type fakeNormalizer struct {
	calls int
}

func (n *fakeNormalizer) Normalize(rec *domain.Record) *domain.Record {
	n.calls++
	c := rec.Clone()
	c.StatusCondition = 0
	return c
}

func newTestImporter(resolver domain.RecordResolver) (*Importer, *fakeNormalizer) {
	normalizer := &fakeNormalizer{}
	return NewImporter(resolver, normalizer, &mockLogger{}), normalizer
}

func templatesNamed(names ...string) []*domain.Template {
	templates := make([]*domain.Template, 0, len(names))
	for i, name := range names {
		templates = append(templates, &domain.Template{Name: name, Species: i + 1})
	}
	return templates
}

func TestImporter_ImportBatch_InsufficientCapacity(t *testing.T) {
	// Arrange: 5 templates into a 3-slot collection, overwrite from 0.
	resolver := &fakeResolver{}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(3)
	templates := templatesNamed("a", "b", "c", "d", "e")

	// Act
	report := importer.ImportBatch(context.Background(), templates, col, 0, true)

	// Assert
	require.NotNil(t, report)
	assert.Equal(t, domain.StatusInsufficientCapacity, report.Status)
	assert.Empty(t, report.Written)
	assert.Empty(t, col.puts, "the collection must be left entirely unmodified")
	assert.Zero(t, resolver.calls, "no template may be resolved before capacity is known sufficient")
}

func TestImporter_ImportBatch_FillsEmptySlotsInOrder(t *testing.T) {
	// Arrange: empties at 2, 5, 7.
	resolver := &fakeResolver{}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(10).occupy(0, 1, 3, 4, 6, 8, 9)
	templates := templatesNamed("first", "second", "third")

	// Act
	report := importer.ImportBatch(context.Background(), templates, col, 0, false)

	// Assert
	assert.Equal(t, domain.StatusOK, report.Status)
	assert.Equal(t, []int{2, 5, 7}, report.Written)
	require.Equal(t, []int{2, 5, 7}, col.puts)
	assert.Equal(t, "first", col.At(2).Nickname)
	assert.Equal(t, "second", col.At(5).Nickname)
	assert.Equal(t, "third", col.At(7).Nickname)
}

func TestImporter_ImportBatch_RejectedTemplateMidBatch(t *testing.T) {
	// Arrange: 4 templates, the one at position 2 carries invalid lines.
	resolver := &fakeResolver{}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(8)
	templates := templatesNamed("a", "b", "c", "d")
	templates[2].InvalidLines = []string{"Abilty: Levitate"}

	// Act
	report := importer.ImportBatch(context.Background(), templates, col, 0, true)

	// Assert: positions [0, 2) stay written, [2, 4) remain unwritten.
	assert.Equal(t, domain.StatusRejectedTemplate, report.Status)
	assert.Equal(t, "c", report.Rejected)
	assert.Equal(t, []int{0, 1}, report.Written)
	assert.Equal(t, []int{0, 1}, col.puts)
	assert.Nil(t, col.At(2))
	assert.Nil(t, col.At(3))
	assert.Equal(t, 2, resolver.calls)
}

func TestImporter_ImportBatch_RejectedFirstTemplate(t *testing.T) {
	resolver := &fakeResolver{}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(4)
	templates := templatesNamed("bad", "good")
	templates[0].InvalidLines = []string{"???"}

	report := importer.ImportBatch(context.Background(), templates, col, 0, true)

	assert.Equal(t, domain.StatusRejectedTemplate, report.Status)
	assert.Empty(t, col.puts)
	assert.Zero(t, resolver.calls)
}

func TestImporter_ImportBatch_SlowPathAccumulator(t *testing.T) {
	// Arrange
	resolver := &fakeResolver{outcomes: map[string]domain.Outcome{
		"swift":    domain.OutcomeMatched,
		"patient":  domain.OutcomeSearched,
		"stubborn": domain.OutcomeSearched,
	}}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(5)
	templates := templatesNamed("swift", "patient", "stubborn")

	// Act
	report := importer.ImportBatch(context.Background(), templates, col, 0, true)

	// Assert: slow-path templates are recorded without affecting status.
	assert.Equal(t, domain.StatusOK, report.Status)
	assert.Equal(t, []string{"patient", "stubborn"}, report.SlowPath)
	assert.Len(t, report.Written, 3)
}

func TestImporter_ImportBatch_FailedOutcomeStillPlaced(t *testing.T) {
	// A failed resolution still consumes its slot; the blank or partial
	// record is written as-is.
	resolver := &fakeResolver{outcomes: map[string]domain.Outcome{
		"hopeless": domain.OutcomeFailed,
	}}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(2)

	report := importer.ImportBatch(context.Background(), templatesNamed("hopeless"), col, 0, true)

	assert.Equal(t, domain.StatusOK, report.Status)
	assert.Equal(t, []int{0}, report.Written)
	assert.Empty(t, report.SlowPath)
}

func TestImporter_ImportBatch_NormalizesBeforeInsert(t *testing.T) {
	resolver := &fakeResolver{}
	importer, normalizer := newTestImporter(resolver)
	col := newFakeCollection(2)

	report := importer.ImportBatch(context.Background(), templatesNamed("one"), col, 0, true)

	require.Equal(t, domain.StatusOK, report.Status)
	assert.Equal(t, 1, normalizer.calls)
	require.NotNil(t, col.At(0))
	assert.Zero(t, col.At(0).StatusCondition, "transient state must be cleared before insertion")
}

func TestImporter_ImportBatch_UsesCollectionIdentity(t *testing.T) {
	// Arrange
	resolver := &fakeResolver{}
	importer, _ := newTestImporter(resolver)
	col := newFakeCollection(2)
	col.owner = &domain.IdentityContext{TrainerName: "Box Owner", TrainerID: 777}

	// Act
	importer.ImportBatch(context.Background(), templatesNamed("one"), col, 0, true)

	// Assert
	require.NotNil(t, col.At(0))
	assert.Equal(t, "Box Owner", col.At(0).TrainerName)
	assert.Equal(t, uint32(777), col.At(0).TrainerID)
}

func TestImporter_ImportBatch_BatchIDIsUUID(t *testing.T) {
	importer, _ := newTestImporter(&fakeResolver{})
	col := newFakeCollection(2)

	report := importer.ImportBatch(context.Background(), templatesNamed("one"), col, 0, true)

	_, err := uuid.Parse(report.BatchID)
	assert.NoError(t, err)
}

func TestImporter_ImportBatch_EmptyBatch(t *testing.T) {
	importer, _ := newTestImporter(&fakeResolver{})
	col := newFakeCollection(0)

	report := importer.ImportBatch(context.Background(), nil, col, 0, false)

	assert.Equal(t, domain.StatusOK, report.Status)
	assert.Zero(t, report.Requested)
	assert.Empty(t, report.Written)
}
