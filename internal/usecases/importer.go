package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/Koi-3088/PKHeX-Plugins/internal/domain"
)

// Importer places many resolved records into a destination collection.
// It implements domain.BatchImporter.
//
// The importer assumes exclusive access to the destination collection
// for the duration of one ImportBatch call; callers running concurrent
// batches against the same collection must serialize their own writes.
type Importer struct {
	resolver   domain.RecordResolver
	normalizer domain.Normalizer
	logger     Logger
}

// NewImporter creates an Importer with the given dependencies.
func NewImporter(resolver domain.RecordResolver, normalizer domain.Normalizer, log Logger) *Importer {
	return &Importer{
		resolver:   resolver,
		normalizer: normalizer,
		logger:     log,
	}
}

// ImportBatch resolves every template in input order and writes the
// results into the collection.
//
// Capacity is checked before any mutation: when the candidate slots are
// fewer than the templates, the collection is left entirely unmodified.
// A template carrying invalid lines aborts the batch at its position;
// earlier writes from the same call stay written and the remainder is
// abandoned. Input order determines slot assignment.
func (im *Importer) ImportBatch(
	ctx context.Context,
	templates []*domain.Template,
	col domain.Collection,
	startIndex int,
	overwrite bool,
) *domain.BatchReport {
	report := &domain.BatchReport{
		BatchID:   uuid.NewString(),
		Requested: len(templates),
	}

	im.logger.Info(ctx, "starting batch import", map[string]interface{}{
		"batch_id":    report.BatchID,
		"templates":   len(templates),
		"start_index": startIndex,
		"overwrite":   overwrite,
	})

	slots := FindSlots(col, startIndex, len(templates), overwrite)
	if len(slots) < len(templates) {
		report.Status = domain.StatusInsufficientCapacity
		im.logger.Warn(ctx, "insufficient capacity for batch", map[string]interface{}{
			"batch_id":  report.BatchID,
			"templates": len(templates),
			"slots":     len(slots),
		})
		return report
	}

	identity := col.Identity()

	for i, tmpl := range templates {
		if tmpl.HasInvalidLines() {
			report.Status = domain.StatusRejectedTemplate
			report.Rejected = tmpl.Name
			im.logger.Warn(ctx, "batch aborted by invalid template", map[string]interface{}{
				"batch_id": report.BatchID,
				"template": tmpl.Name,
				"position": i,
				"written":  len(report.Written),
			})
			return report
		}

		res := im.resolver.Resolve(ctx, tmpl, identity)
		rec := im.normalizer.Normalize(res.Record)
		col.Put(slots[i], rec)
		report.Written = append(report.Written, slots[i])

		if res.Outcome == domain.OutcomeSearched {
			report.SlowPath = append(report.SlowPath, tmpl.Name)
		}
	}

	report.Status = domain.StatusOK
	im.logger.Info(ctx, "batch import complete", map[string]interface{}{
		"batch_id":  report.BatchID,
		"written":   len(report.Written),
		"slow_path": len(report.SlowPath),
	})
	return report
}
