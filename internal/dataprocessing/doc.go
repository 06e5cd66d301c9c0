// Package dataprocessing implements the enrollment ingestion pipeline: a
// delimiter-agnostic CSV tokenizer, a header-driven field mapper, the
// deterministic classification rules, and the filtering and aggregation
// engine that turns a record set into chart-ready summaries.
//
// # Architecture
//
// Data flows strictly one way through four independent stages:
//
//	raw text → Tokenize → MapFields → ClassifyAll → (ApplyFilters) → Aggregate
//
// The tokenizer knows nothing about semantics; the mapper knows nothing
// about classification; the classifier is a set of mutually independent
// pure functions over the raw fields; filtering and aggregation are pure
// projections over classified records and safe to re-invoke on every
// filter change.
//
// # Usage
//
// One-shot ingestion of an uploaded document:
//
//	records := dataprocessing.IngestText(ctx, logger, text)
//
// Filtering and aggregation for presentation:
//
//	subset := dataprocessing.ApplyFilters(records, spec)
//	stats := dataprocessing.Aggregate(subset)
//
// # Error Handling
//
// No stage in this package fails. Tokenization consumes any text (an
// unterminated quoted field takes the rest of the document as one field),
// mapping drops rows without a usable name instead of erroring, and every
// classification path lands in a defined fallback bucket.
package dataprocessing
