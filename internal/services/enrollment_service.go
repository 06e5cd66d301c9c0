package services

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"inscripcli/internal/dataprocessing"
	"inscripcli/pkg/contracts/domain"
)

// EnrollmentService owns the current classified record set. Each upload
// produces a brand-new immutable snapshot that replaces the previous one
// wholesale; filtering and aggregation always operate on the current
// snapshot and never mutate it. A failed ingestion keeps the previous
// snapshot intact.
type EnrollmentService struct {
	logger  *slog.Logger
	metrics *Metrics

	mu      sync.RWMutex
	current *domain.Snapshot
}

// StatsView bundles the aggregate counts with their chart-ready
// projections for one filtered subset.
type StatsView struct {
	Stats          domain.EnrollmentStats `json:"stats"`
	TurnoChart     []domain.ChartBucket   `json:"turno_chart"`
	EstadoChart    []domain.ChartBucket   `json:"estado_chart"`
	GeneroChart    []domain.ChartBucket   `json:"genero_chart"`
	ActividadChart []domain.ChartBucket   `json:"actividad_chart"`
}

// NewEnrollmentService creates the enrollment service. Metrics may be nil.
func NewEnrollmentService(logger *slog.Logger, metrics *Metrics) *EnrollmentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EnrollmentService{
		logger:  logger.With(slog.String("component", "enrollment_service")),
		metrics: metrics,
	}
}

// Ingest runs the full pipeline over one uploaded document and, on
// success, atomically replaces the current snapshot. The whole pass is one
// synchronous call; there is no partial replacement.
func (s *EnrollmentService) Ingest(ctx context.Context, source, text string) (*domain.Snapshot, error) {
	if strings.TrimSpace(text) == "" {
		s.metrics.observeIngest("empty", 0)
		return nil, ErrEmptyDocument
	}

	records := dataprocessing.IngestText(ctx, s.logger, text)
	if len(records) == 0 {
		s.logger.WarnContext(ctx, "document yielded no records, keeping previous snapshot",
			slog.String("source", source))
		s.metrics.observeIngest("no_records", 0)
		return nil, ErrNoRecords
	}

	snapshot := &domain.Snapshot{
		Generation: uuid.New().String(),
		Source:     source,
		LoadedAt:   time.Now().UTC(),
		Records:    records,
		Options:    dataprocessing.Options(records),
	}

	s.mu.Lock()
	s.current = snapshot
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "snapshot replaced",
		slog.String("generation", snapshot.Generation),
		slog.String("source", source),
		slog.Int("records", len(records)))
	s.metrics.observeIngest("ok", len(records))

	return snapshot, nil
}

// Current returns the current snapshot.
func (s *EnrollmentService) Current(ctx context.Context) (*domain.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoData
	}
	return s.current, nil
}

// Records returns the records of the current snapshot matching the filter
// spec, in their original order.
func (s *EnrollmentService) Records(ctx context.Context, spec domain.FilterSpec) ([]domain.EnrollmentRecord, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	return dataprocessing.ApplyFilters(snapshot.Records, spec), nil
}

// Stats aggregates the filtered subset of the current snapshot into counts
// and chart projections. Recomputed from scratch on every call.
func (s *EnrollmentService) Stats(ctx context.Context, spec domain.FilterSpec) (*StatsView, error) {
	subset, err := s.Records(ctx, spec)
	if err != nil {
		return nil, err
	}

	stats := dataprocessing.Aggregate(subset)

	return &StatsView{
		Stats: stats,
		TurnoChart: dataprocessing.ChartBuckets(stats.ByTurno, []string{
			domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight, domain.ShiftUnknown,
		}),
		EstadoChart: dataprocessing.ChartBuckets(stats.ByEstado, []string{
			domain.StatusAccepted, domain.StatusPending, domain.StatusRejected,
		}),
		GeneroChart: dataprocessing.ChartBuckets(stats.ByGenero, []string{
			domain.GenderFemale, domain.GenderMale, domain.GenderUnknown,
		}),
		ActividadChart: dataprocessing.ActivityChartBuckets(stats.ByActividad),
	}, nil
}

// Options returns the filter option lists derived from the full current
// record set.
func (s *EnrollmentService) Options(ctx context.Context) (domain.FilterOptions, error) {
	snapshot, err := s.Current(ctx)
	if err != nil {
		return domain.FilterOptions{}, err
	}
	return snapshot.Options, nil
}
