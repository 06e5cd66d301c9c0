// Package http provides the HTTP transport layer for the enrollment
// service. Handlers follow the chi Router pattern: each handler exposes its
// routes through a Routes() method mounted by the application, responses
// are rendered with go-chi/render, and errors are converted to RFC 7807
// problem documents by the shared error handler.
package http
