package dataprocessing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscripcli/pkg/contracts/domain"
)

func TestAggregate(t *testing.T) {
	records := []domain.EnrollmentRecord{
		{Turno: domain.ShiftMorning, Estado: "Aceptada", Genero: domain.GenderFemale, ActividadSimple: "Soldadura"},
		{Turno: domain.ShiftMorning, Estado: "Pendiente", Genero: domain.GenderMale, ActividadSimple: "Soldadura"},
		{Turno: domain.ShiftAfternoon, Estado: "Rechazada", Genero: domain.GenderFemale, ActividadSimple: "Inglés"},
		{Turno: domain.ShiftUnknown, Estado: "En Revisión", Genero: domain.GenderUnknown, ActividadSimple: "Inglés"},
		{Turno: domain.ShiftNight, Estado: " Aceptada ", Genero: domain.GenderMale, ActividadSimple: "Mecánica"},
	}

	stats := Aggregate(records)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, map[string]int{
		domain.ShiftMorning:   2,
		domain.ShiftAfternoon: 1,
		domain.ShiftNight:     1,
		domain.ShiftUnknown:   1,
	}, stats.ByTurno)

	// Estado is trimmed before tallying; unrecognized statuses are counted
	// nowhere, so the status total may be lower than the subset size.
	assert.Equal(t, map[string]int{
		domain.StatusAccepted: 2,
		domain.StatusPending:  1,
		domain.StatusRejected: 1,
	}, stats.ByEstado)

	assert.Equal(t, map[string]int{
		domain.GenderFemale:  2,
		domain.GenderMale:    2,
		domain.GenderUnknown: 1,
	}, stats.ByGenero)
}

func TestAggregateTotalsInvariant(t *testing.T) {
	records := []domain.EnrollmentRecord{
		{Turno: domain.ShiftMorning, Genero: domain.GenderFemale, Estado: "Aceptada"},
		{Turno: "??", Genero: "??", Estado: "??"},
		{Turno: domain.ShiftNight, Genero: domain.GenderMale, Estado: "Pendiente"},
	}

	stats := Aggregate(records)

	turnoTotal := 0
	for _, n := range stats.ByTurno {
		turnoTotal += n
	}
	generoTotal := 0
	for _, n := range stats.ByGenero {
		generoTotal += n
	}
	estadoTotal := 0
	for _, n := range stats.ByEstado {
		estadoTotal += n
	}

	// Shift and gender carry a residual bucket and always sum to the
	// subset size; the status tally does not and may fall short.
	assert.Equal(t, stats.Total, turnoTotal)
	assert.Equal(t, stats.Total, generoTotal)
	assert.Equal(t, 2, estadoTotal)
}

func TestAggregateActivityOrdering(t *testing.T) {
	records := []domain.EnrollmentRecord{
		{ActividadSimple: "Inglés"},
		{ActividadSimple: "Soldadura"},
		{ActividadSimple: "Soldadura"},
		{ActividadSimple: "Mecánica"},
		{ActividadSimple: "Inglés"},
	}

	stats := Aggregate(records)

	require.Len(t, stats.ByActividad, 3)
	// Descending by count; the tie between Inglés and Soldadura keeps
	// encounter order (Inglés was seen first).
	assert.Equal(t, domain.ActivityCount{Activity: "Inglés", Count: 2}, stats.ByActividad[0])
	assert.Equal(t, domain.ActivityCount{Activity: "Soldadura", Count: 2}, stats.ByActividad[1])
	assert.Equal(t, domain.ActivityCount{Activity: "Mecánica", Count: 1}, stats.ByActividad[2])
}

func TestAggregateEmptySubset(t *testing.T) {
	stats := Aggregate(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByActividad)
	assert.Equal(t, 0, stats.ByTurno[domain.ShiftMorning])
}

func TestChartBuckets(t *testing.T) {
	counts := map[string]int{
		domain.ShiftMorning:   3,
		domain.ShiftAfternoon: 0,
		domain.ShiftNight:     1,
		domain.ShiftUnknown:   0,
	}

	buckets := ChartBuckets(counts, []string{
		domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight, domain.ShiftUnknown,
	})

	// Zero-count buckets are dropped; order follows the given key order.
	require.Len(t, buckets, 2)
	assert.Equal(t, domain.ChartBucket{Label: "TM", FullLabel: "TM", Count: 3}, buckets[0])
	assert.Equal(t, domain.ChartBucket{Label: "TN", FullLabel: "TN", Count: 1}, buckets[1])
}

func TestActivityChartBucketsTruncatesLongLabels(t *testing.T) {
	long := strings.Repeat("á", 25)

	buckets := ActivityChartBuckets([]domain.ActivityCount{
		{Activity: long, Count: 2},
		{Activity: "Corta", Count: 1},
	})

	require.Len(t, buckets, 2)
	assert.Equal(t, strings.Repeat("á", 20)+"…", buckets[0].Label)
	assert.Equal(t, long, buckets[0].FullLabel)
	assert.Equal(t, "Corta", buckets[1].Label)
}
