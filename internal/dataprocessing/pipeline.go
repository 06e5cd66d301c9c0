package dataprocessing

import (
	"context"
	"log/slog"

	"inscripcli/pkg/contracts/domain"
)

// IngestText runs the full ingestion pass over one uploaded document: raw
// text to tokens to mapped records to classified records, in a single
// synchronous call. It never fails; a document from which no usable record
// can be mapped simply yields an empty set, and the caller decides whether
// that means "no data" or a bad upload.
func IngestText(ctx context.Context, logger *slog.Logger, text string) []domain.EnrollmentRecord {
	if logger == nil {
		logger = slog.Default()
	}

	table := Tokenize(text)
	records := ClassifyAll(MapFields(table))

	logger.InfoContext(ctx, "document ingested",
		slog.Int("rows", len(table)),
		slog.Int("records", len(records)))

	return records
}
