package domain

import (
	"time"
)

// Shift codes derived from the commission string.
const (
	ShiftMorning   = "TM"
	ShiftAfternoon = "TT"
	ShiftNight     = "TN"
	ShiftUnknown   = "Desconocido"
)

// Offering types derived from the activity prefix code.
const (
	OfferingJobTraining = "Capacitación Laboral"
	OfferingCourse      = "Curso"
	OfferingPathway     = "Trayecto"
	OfferingOther       = "Otro"
)

// Inferred gender values. GenderUnknown is only produced when no given
// name can be extracted from the full name.
const (
	GenderFemale  = "Femenino"
	GenderMale    = "Masculino"
	GenderUnknown = "Desconocido"
)

// Enrollment statuses the aggregator recognizes. The raw estado field is
// open-ended; unrecognized values are preserved on the record verbatim.
const (
	StatusAccepted = "Aceptada"
	StatusPending  = "Pendiente"
	StatusRejected = "Rechazada"
)

// FallbackActivity is the simplified activity label used when a record
// carries no activity string at all.
const FallbackActivity = "Sin Actividad"

// EnrollmentRecord is one classified course-enrollment row. The first six
// fields come straight from the uploaded document; the remaining four are
// derived by the classifier and never change after ingestion.
type EnrollmentRecord struct {
	Alumno    string `json:"alumno"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Comision  string `json:"comision"`
	Estado    string `json:"estado"`
	Actividad string `json:"actividad"`

	Turno           string `json:"turno"`
	TipoOferta      string `json:"tipo_oferta"`
	ActividadSimple string `json:"actividad_simple"`
	Genero          string `json:"genero"`
}

// FilterSpec is a snapshot of the active filter controls. Empty or "all"
// means the criterion passes everything; criteria combine with AND.
type FilterSpec struct {
	Turno      string `json:"turno,omitempty" validate:"omitempty,oneof=all TM TT TN Desconocido"`
	Estado     string `json:"estado,omitempty"`
	TipoOferta string `json:"tipo_oferta,omitempty" validate:"omitempty,oneof=all 'Capacitación Laboral' Curso Trayecto Otro"`
	Genero     string `json:"genero,omitempty" validate:"omitempty,oneof=all Femenino Masculino Desconocido"`
	Actividad  string `json:"actividad,omitempty"`
	Search     string `json:"search,omitempty" validate:"omitempty,max=200"`
}

// IsZero reports whether the spec filters nothing at all.
func (s FilterSpec) IsZero() bool {
	return passAll(s.Turno) && passAll(s.Estado) && passAll(s.TipoOferta) &&
		passAll(s.Genero) && passAll(s.Actividad) && s.Search == ""
}

func passAll(v string) bool {
	return v == "" || v == "all"
}

// ActivityCount pairs a simplified activity label with its occurrence count.
type ActivityCount struct {
	Activity string `json:"activity"`
	Count    int    `json:"count"`
}

// ChartBucket is one chart-ready slice: a display label (possibly
// truncated), the untruncated label for tooltips and exact matching, and
// the count. Zero-count buckets never appear in chart projections.
type ChartBucket struct {
	Label     string `json:"label"`
	FullLabel string `json:"full_label"`
	Count     int    `json:"count"`
}

// EnrollmentStats holds the aggregate counts for one record subset at one
// point in time. It is a pure projection and is recomputed from scratch
// whenever the subset changes.
//
// ByEstado only tallies the three recognized statuses; rows with any other
// estado are counted nowhere, so its total may be lower than Total. ByTurno
// and ByGenero both carry a residual Desconocido bucket and always sum to
// Total.
type EnrollmentStats struct {
	Total    int            `json:"total"`
	ByTurno  map[string]int `json:"by_turno"`
	ByEstado map[string]int `json:"by_estado"`
	ByGenero map[string]int `json:"by_genero"`

	// ByActividad is sorted by descending count; ties keep encounter order.
	ByActividad []ActivityCount `json:"by_actividad"`
}

// FilterOptions holds the selectable values derived from the full record
// set: distinct trimmed estado values and distinct simplified activity
// labels, each sorted ascending.
type FilterOptions struct {
	Estados     []string `json:"estados"`
	Actividades []string `json:"actividades"`
}

// Snapshot is one immutable ingestion generation: the whole classified
// record set produced by a single upload, replaced wholesale on the next
// upload and never mutated in place.
type Snapshot struct {
	Generation string             `json:"generation"`
	Source     string             `json:"source"`
	LoadedAt   time.Time          `json:"loaded_at"`
	Records    []EnrollmentRecord `json:"records"`
	Options    FilterOptions      `json:"options"`
}
