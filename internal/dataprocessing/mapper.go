package dataprocessing

import (
	"strings"

	"inscripcli/pkg/contracts/domain"
)

// canonical field keys used during header mapping.
const (
	fieldAlumno    = "alumno"
	fieldDNI       = "dni"
	fieldEmail     = "email"
	fieldComision  = "comision"
	fieldEstado    = "estado"
	fieldActividad = "actividad"
)

// headerMarkers maps a case-sensitive substring of a header cell to the
// canonical field it identifies. Cells matching no marker are dropped; a
// repeated marker lets the later column overwrite the earlier one.
var headerMarkers = []struct {
	marker string
	field  string
}{
	{"Alumno", fieldAlumno},
	{"Identificación", fieldDNI},
	{"Mail", fieldEmail},
	{"Comisión", fieldComision},
	{"Estado", fieldEstado},
	{"Actividad", fieldActividad},
}

// MapFields projects a tokenized table into enrollment records. The first
// row is the header; each remaining row becomes one record via positional
// alignment, with missing trailing fields left empty. Rows with an empty
// Alumno field are excluded: that is the single filtering gate at ingestion
// time.
func MapFields(table RawTable) []domain.EnrollmentRecord {
	if len(table) == 0 {
		return nil
	}

	columns := mapHeader(table[0])

	records := make([]domain.EnrollmentRecord, 0, len(table)-1)
	for _, row := range table[1:] {
		rec := buildRecord(columns, row)
		if rec.Alumno == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

// mapHeader resolves each header cell to a canonical field, positionally
// aligned with the header. Unrecognized cells map to the empty string.
func mapHeader(header []string) []string {
	columns := make([]string, len(header))
	for i, cell := range header {
		for _, m := range headerMarkers {
			if strings.Contains(cell, m.marker) {
				columns[i] = m.field
				break
			}
		}
	}
	return columns
}

// buildRecord walks the columns left to right, so a repeated header marker
// lets the later column overwrite the earlier one's value.
func buildRecord(columns []string, row []string) domain.EnrollmentRecord {
	var rec domain.EnrollmentRecord
	for i, field := range columns {
		if i >= len(row) {
			continue
		}
		switch field {
		case fieldAlumno:
			rec.Alumno = row[i]
		case fieldDNI:
			rec.DNI = row[i]
		case fieldEmail:
			rec.Email = row[i]
		case fieldComision:
			rec.Comision = row[i]
		case fieldEstado:
			rec.Estado = row[i]
		case fieldActividad:
			rec.Actividad = row[i]
		}
	}
	return rec
}
