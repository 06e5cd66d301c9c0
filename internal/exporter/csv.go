package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"inscripcli/pkg/contracts/domain"
)

// recordHeaders is the column layout for record exports, raw fields first,
// derived fields after.
var recordHeaders = []string{
	"Alumno", "Identificación", "Mail", "Comisión", "Estado", "Actividad",
	"Turno", "Tipo de Oferta", "Actividad Simple", "Género",
}

// WriteRecordsCSV writes classified records as CSV. A UTF-8 BOM is
// prepended so spreadsheet applications recognize the encoding of accented
// names.
func WriteRecordsCSV(w io.Writer, records []domain.EnrollmentRecord) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(recordHeaders); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	for i, rec := range records {
		row := []string{
			rec.Alumno, rec.DNI, rec.Email, rec.Comision, rec.Estado, rec.Actividad,
			rec.Turno, rec.TipoOferta, rec.ActividadSimple, rec.Genero,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteStatsCSV writes the aggregate counts as a two-column CSV grouped in
// sections, one section per dimension.
func WriteStatsCSV(w io.Writer, stats domain.EnrollmentStats) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Dimensión", "Valor", "Cantidad"}); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	write := func(dimension, value string, count int) error {
		return writer.Write([]string{dimension, value, strconv.Itoa(count)})
	}

	for _, shift := range []string{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight, domain.ShiftUnknown} {
		if err := write("Turno", shift, stats.ByTurno[shift]); err != nil {
			return err
		}
	}
	for _, status := range []string{domain.StatusAccepted, domain.StatusPending, domain.StatusRejected} {
		if err := write("Estado", status, stats.ByEstado[status]); err != nil {
			return err
		}
	}
	for _, gender := range []string{domain.GenderFemale, domain.GenderMale, domain.GenderUnknown} {
		if err := write("Género", gender, stats.ByGenero[gender]); err != nil {
			return err
		}
	}
	for _, ac := range stats.ByActividad {
		if err := write("Actividad", ac.Activity, ac.Count); err != nil {
			return err
		}
	}

	return writer.Error()
}
