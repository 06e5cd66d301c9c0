package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscripcli/pkg/contracts/domain"
)

const serviceSampleCSV = `Alumno,Nro. de Identificación,Comisión,Estado,Actividad
"Gómez, Ana",30111222,Soldadura - 01-TM,Aceptada,(CL_1436) Soldadura Básica
"López, Juan",28999888,Inglés - 02-TT,Pendiente,(CT_5) Inglés Inicial
`

func newTestService() *EnrollmentService {
	return NewEnrollmentService(slog.Default(), nil)
}

func TestIngestReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Ingest(ctx, "first.csv", serviceSampleCSV)
	require.NoError(t, err)
	assert.Len(t, first.Records, 2)
	assert.NotEmpty(t, first.Generation)

	second, err := svc.Ingest(ctx, "second.csv", serviceSampleCSV)
	require.NoError(t, err)
	assert.NotEqual(t, first.Generation, second.Generation)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.Generation, current.Generation)
}

func TestIngestEmptyDocument(t *testing.T) {
	svc := newTestService()

	_, err := svc.Ingest(context.Background(), "empty.csv", "   \n  ")
	assert.ErrorIs(t, err, ErrEmptyDocument)
}

// A failed ingestion must not clobber the previously loaded snapshot.
func TestIngestFailureKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	first, err := svc.Ingest(ctx, "good.csv", serviceSampleCSV)
	require.NoError(t, err)

	// Header only: every data row is missing, nothing survives the gate.
	_, err = svc.Ingest(ctx, "bad.csv", "Alumno,Estado\n,Aceptada\n")
	assert.ErrorIs(t, err, ErrNoRecords)

	current, err := svc.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Generation, current.Generation)
}

func TestCurrentBeforeIngest(t *testing.T) {
	svc := newTestService()

	_, err := svc.Current(context.Background())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = svc.Records(context.Background(), domain.FilterSpec{})
	assert.ErrorIs(t, err, ErrNoData)

	_, err = svc.Stats(context.Background(), domain.FilterSpec{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRecordsAppliesFilters(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Ingest(ctx, "sample.csv", serviceSampleCSV)
	require.NoError(t, err)

	records, err := svc.Records(ctx, domain.FilterSpec{Turno: domain.ShiftMorning})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Gómez, Ana", records[0].Alumno)
}

func TestStatsView(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Ingest(ctx, "sample.csv", serviceSampleCSV)
	require.NoError(t, err)

	view, err := svc.Stats(ctx, domain.FilterSpec{})
	require.NoError(t, err)

	assert.Equal(t, 2, view.Stats.Total)
	// Chart projections drop zero buckets: only TM and TT appear.
	require.Len(t, view.TurnoChart, 2)
	assert.Equal(t, domain.ShiftMorning, view.TurnoChart[0].FullLabel)
	assert.Equal(t, domain.ShiftAfternoon, view.TurnoChart[1].FullLabel)
	require.Len(t, view.ActividadChart, 2)
}

func TestOptions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Ingest(ctx, "sample.csv", serviceSampleCSV)
	require.NoError(t, err)

	opts, err := svc.Options(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aceptada", "Pendiente"}, opts.Estados)
	assert.Equal(t, []string{"Inglés Inicial", "Soldadura Básica"}, opts.Actividades)
}

func TestMetricsObserveIngest(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)
	svc := NewEnrollmentService(slog.Default(), metrics)

	_, err := svc.Ingest(context.Background(), "sample.csv", serviceSampleCSV)
	require.NoError(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.IngestsTotal.WithLabelValues("ok")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.RecordsIngested))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.SnapshotRecords))

	_, err = svc.Ingest(context.Background(), "empty.csv", "")
	require.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.IngestsTotal.WithLabelValues("empty")))
}
