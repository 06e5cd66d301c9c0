package exporter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"inscripcli/pkg/contracts/domain"
)

const (
	recordsSheet = "Inscripciones"
	statsSheet   = "Resumen"
)

// WriteRecordsXLSX writes classified records and their aggregate summary
// as a two-sheet Excel workbook.
func WriteRecordsXLSX(w io.Writer, records []domain.EnrollmentRecord, stats domain.EnrollmentStats) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(recordsSheet)
	if err != nil {
		return fmt.Errorf("failed to create records sheet: %w", err)
	}
	f.SetActiveSheet(index)
	// Drop the default sheet excelize creates.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to remove default sheet: %w", err)
	}

	if err := writeRecordRows(f, records); err != nil {
		return err
	}
	if err := writeStatsRows(f, stats); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRecordRows(f *excelize.File, records []domain.EnrollmentRecord) error {
	header := make([]interface{}, len(recordHeaders))
	for i, h := range recordHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(recordsSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to resolve cell for row %d: %w", i, err)
		}
		row := []interface{}{
			rec.Alumno, rec.DNI, rec.Email, rec.Comision, rec.Estado, rec.Actividad,
			rec.Turno, rec.TipoOferta, rec.ActividadSimple, rec.Genero,
		}
		if err := f.SetSheetRow(recordsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	return nil
}

func writeStatsRows(f *excelize.File, stats domain.EnrollmentStats) error {
	if _, err := f.NewSheet(statsSheet); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Dimensión", "Valor", "Cantidad"},
	}
	for _, shift := range []string{domain.ShiftMorning, domain.ShiftAfternoon, domain.ShiftNight, domain.ShiftUnknown} {
		rows = append(rows, []interface{}{"Turno", shift, stats.ByTurno[shift]})
	}
	for _, status := range []string{domain.StatusAccepted, domain.StatusPending, domain.StatusRejected} {
		rows = append(rows, []interface{}{"Estado", status, stats.ByEstado[status]})
	}
	for _, gender := range []string{domain.GenderFemale, domain.GenderMale, domain.GenderUnknown} {
		rows = append(rows, []interface{}{"Género", gender, stats.ByGenero[gender]})
	}
	for _, ac := range stats.ByActividad {
		rows = append(rows, []interface{}{"Actividad", ac.Activity, ac.Count})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to resolve summary cell %d: %w", i, err)
		}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write summary row %d: %w", i, err)
		}
	}
	return nil
}
