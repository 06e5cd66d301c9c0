package services

import "errors"

// Sentinel errors returned by the enrollment service. Transport maps these
// to API error codes.
var (
	// ErrNoData means no document has been ingested yet.
	ErrNoData = errors.New("no enrollment data loaded")

	// ErrEmptyDocument means the uploaded document contained no text.
	ErrEmptyDocument = errors.New("uploaded document is empty")

	// ErrNoRecords means the document parsed but no row carried a usable
	// name, so no record survived the ingestion gate.
	ErrNoRecords = errors.New("document yielded no usable records")
)
