package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscripcli/pkg/contracts/domain"
)

func sampleRecords() []domain.EnrollmentRecord {
	return []domain.EnrollmentRecord{
		{
			Alumno: "Gómez, Ana", DNI: "30111222", Email: "ana@mail.com",
			Comision: "Soldadura - 01-TM", Estado: "Aceptada",
			Actividad: "(CL_1436) Soldadura Básica",
			Turno:     domain.ShiftMorning, TipoOferta: domain.OfferingJobTraining,
			ActividadSimple: "Soldadura Básica", Genero: domain.GenderFemale,
		},
		{
			Alumno: "López, Juan", DNI: "28999888",
			Turno: domain.ShiftUnknown, TipoOferta: domain.OfferingOther,
			ActividadSimple: domain.FallbackActivity, Genero: domain.GenderMale,
		},
	}
}

func TestWriteRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsCSV(&buf, sampleRecords()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\xEF\xBB\xBF"), "expected UTF-8 BOM prefix")

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, recordHeaders, rows[0])
	assert.Equal(t, "Gómez, Ana", rows[1][0])
	assert.Equal(t, domain.ShiftMorning, rows[1][6])
	assert.Equal(t, domain.FallbackActivity, rows[2][8])
}

func TestWriteRecordsCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRecordsCSV(&buf, nil))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteStatsCSV(t *testing.T) {
	stats := domain.EnrollmentStats{
		Total: 3,
		ByTurno: map[string]int{
			domain.ShiftMorning: 2, domain.ShiftAfternoon: 1,
			domain.ShiftNight: 0, domain.ShiftUnknown: 0,
		},
		ByEstado: map[string]int{
			domain.StatusAccepted: 2, domain.StatusPending: 1, domain.StatusRejected: 0,
		},
		ByGenero: map[string]int{
			domain.GenderFemale: 2, domain.GenderMale: 1, domain.GenderUnknown: 0,
		},
		ByActividad: []domain.ActivityCount{
			{Activity: "Soldadura Básica", Count: 2},
			{Activity: "Inglés Inicial", Count: 1},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatsCSV(&buf, stats))

	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(buf.String(), "\xEF\xBB\xBF")))
	rows, err := reader.ReadAll()
	require.NoError(t, err)

	// Header + 4 shifts + 3 statuses + 3 genders + 2 activities.
	require.Len(t, rows, 13)
	assert.Equal(t, []string{"Turno", "TM", "2"}, rows[1])
	assert.Equal(t, []string{"Actividad", "Soldadura Básica", "2"}, rows[11])
}
