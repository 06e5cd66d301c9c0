package dataprocessing

import (
	"sort"
	"strings"

	"inscripcli/pkg/contracts/domain"
)

// ApplyFilters returns the subset of records matching every active
// criterion of the spec, preserving the original relative order. Empty or
// "all" criteria pass everything. All criteria are exact-value equality
// except the free-text search, which is a case-insensitive substring match
// against the name or the identification.
func ApplyFilters(records []domain.EnrollmentRecord, spec domain.FilterSpec) []domain.EnrollmentRecord {
	if spec.IsZero() {
		return records
	}

	term := strings.ToLower(spec.Search)

	matched := make([]domain.EnrollmentRecord, 0, len(records))
	for _, rec := range records {
		if !matchValue(spec.Turno, rec.Turno) {
			continue
		}
		if !matchValue(spec.Estado, strings.TrimSpace(rec.Estado)) {
			continue
		}
		if !matchValue(spec.TipoOferta, rec.TipoOferta) {
			continue
		}
		if !matchValue(spec.Genero, rec.Genero) {
			continue
		}
		if !matchValue(spec.Actividad, rec.ActividadSimple) {
			continue
		}
		if term != "" && !matchSearch(rec, term) {
			continue
		}
		matched = append(matched, rec)
	}
	return matched
}

func matchValue(want, got string) bool {
	return want == "" || want == "all" || want == got
}

func matchSearch(rec domain.EnrollmentRecord, term string) bool {
	return strings.Contains(strings.ToLower(rec.Alumno), term) ||
		strings.Contains(strings.ToLower(rec.DNI), term)
}

// Options derives the filter option lists from the full record set: the
// distinct non-empty trimmed estado values and the distinct simplified
// activity labels (including an empty label, should one occur), each
// sorted ascending.
func Options(records []domain.EnrollmentRecord) domain.FilterOptions {
	estados := make(map[string]bool)
	actividades := make(map[string]bool)
	for _, rec := range records {
		if estado := strings.TrimSpace(rec.Estado); estado != "" {
			estados[estado] = true
		}
		// No emptiness gate here: only estado has one. An activity that is
		// all offering code simplifies to "" and still gets an option entry,
		// matching what the aggregator counts.
		actividades[rec.ActividadSimple] = true
	}
	return domain.FilterOptions{
		Estados:     sortedKeys(estados),
		Actividades: sortedKeys(actividades),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
