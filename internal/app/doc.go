// Package app wires the enrollment service together: configuration,
// logging, metrics registry, router and HTTP server, plus graceful startup
// and shutdown. cmd/web is a thin shell around Application.Run.
package app
