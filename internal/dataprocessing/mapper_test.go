package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inscripcli/pkg/contracts/domain"
)

func TestMapFields(t *testing.T) {
	header := []string{"Alumno", "Nro. de Identificación", "E-Mail", "Comisión", "Estado", "Actividad"}

	tests := []struct {
		name  string
		table RawTable
		want  []domain.EnrollmentRecord
	}{
		{
			name:  "empty table",
			table: nil,
			want:  nil,
		},
		{
			name:  "header only",
			table: RawTable{header},
			want:  []domain.EnrollmentRecord{},
		},
		{
			name: "full row maps every field",
			table: RawTable{
				header,
				{"Gómez, Ana", "30111222", "ana@mail.com", "Com 1 - TM", "Aceptada", "(CT_10) Inglés"},
			},
			want: []domain.EnrollmentRecord{{
				Alumno:    "Gómez, Ana",
				DNI:       "30111222",
				Email:     "ana@mail.com",
				Comision:  "Com 1 - TM",
				Estado:    "Aceptada",
				Actividad: "(CT_10) Inglés",
			}},
		},
		{
			name: "short row leaves trailing fields empty",
			table: RawTable{
				header,
				{"Gómez, Ana", "30111222"},
			},
			want: []domain.EnrollmentRecord{{
				Alumno: "Gómez, Ana",
				DNI:    "30111222",
			}},
		},
		{
			name: "row with empty name is excluded",
			table: RawTable{
				header,
				{"", "30111222", "x@mail.com", "Com 1 - TM", "Aceptada", "(CT_10) Inglés"},
				{"Gómez, Ana", "30111222"},
			},
			want: []domain.EnrollmentRecord{{
				Alumno: "Gómez, Ana",
				DNI:    "30111222",
			}},
		},
		{
			name: "unrecognized header columns are dropped",
			table: RawTable{
				{"Alumno", "Fecha de Nacimiento", "Estado"},
				{"Gómez, Ana", "1990-01-01", "Pendiente"},
			},
			want: []domain.EnrollmentRecord{{
				Alumno: "Gómez, Ana",
				Estado: "Pendiente",
			}},
		},
		{
			name: "repeated marker lets later column win",
			table: RawTable{
				{"Alumno", "Estado Anterior", "Estado Actual"},
				{"Gómez, Ana", "Pendiente", "Aceptada"},
			},
			want: []domain.EnrollmentRecord{{
				Alumno: "Gómez, Ana",
				Estado: "Aceptada",
			}},
		},
		{
			name: "headerless document yields nothing",
			table: RawTable{
				{"Gómez, Ana", "30111222"},
				{"López, Juan", "28999888"},
			},
			want: []domain.EnrollmentRecord{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapFields(tt.table))
		})
	}
}

func TestMapFieldsHeaderMatchingIsCaseSensitive(t *testing.T) {
	table := RawTable{
		{"alumno", "estado"},
		{"Gómez, Ana", "Aceptada"},
	}

	// Lowercase header cells match no marker, so the data row maps no
	// fields and is dropped for lacking a name.
	got := MapFields(table)
	require.Empty(t, got)
}
