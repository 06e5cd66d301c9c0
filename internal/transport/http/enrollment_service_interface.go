package http

import (
	"context"

	"inscripcli/internal/services"
	"inscripcli/pkg/contracts/domain"
)

// EnrollmentServiceInterface defines what the enrollment handler needs from
// the service layer. Declared here so handler tests can substitute a stub.
type EnrollmentServiceInterface interface {
	Ingest(ctx context.Context, source, text string) (*domain.Snapshot, error)
	Current(ctx context.Context) (*domain.Snapshot, error)
	Records(ctx context.Context, spec domain.FilterSpec) ([]domain.EnrollmentRecord, error)
	Stats(ctx context.Context, spec domain.FilterSpec) (*services.StatsView, error)
	Options(ctx context.Context) (domain.FilterOptions, error)
}
