// Package services contains the business-logic layer between the HTTP
// transport and the data processing pipeline. The enrollment service owns
// the current classified snapshot and exposes ingest, filter, aggregate
// and option-list operations over it.
package services
